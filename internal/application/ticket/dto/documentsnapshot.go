// Package dto holds flattened read models exchanged between the ticket
// use cases and their collaborators.
package dto

import "time"

// DocumentSnapshot is the flattened ticket view rendered into the
// printable artifact. Cross-aggregate fields are resolved by the
// caller before rendering.
type DocumentSnapshot struct {
	TicketID      uint
	RequesterName string
	AssetType     string
	AssetSerial   string
	Status        string
	Technician    string
	DamageType    string
	Description   string
	WorkLog       string
	CreatedAt     time.Time
}
