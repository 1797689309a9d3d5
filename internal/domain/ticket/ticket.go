package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Ticket tracks a reported equipment problem from intake to closure.
// It references exactly one requester and one asset; both are required
// and the ticket does not outlive either.
type Ticket struct {
	id           uint
	requesterID  uint
	assetID      uint
	description  string
	damageType   string
	status       vo.Status
	technician   string
	workLog      string
	documentPath string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTicket(
	requesterID uint,
	assetID uint,
	description string,
	damageType string,
) (*Ticket, error) {
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	now := time.Now()
	return &Ticket{
		requesterID: requesterID,
		assetID:     assetID,
		description: description,
		damageType:  damageType,
		status:      vo.StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	requesterID uint,
	assetID uint,
	description string,
	damageType string,
	status vo.Status,
	technician string,
	workLog string,
	documentPath string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:           id,
		requesterID:  requesterID,
		assetID:      assetID,
		description:  description,
		damageType:   damageType,
		status:       status,
		technician:   technician,
		workLog:      workLog,
		documentPath: documentPath,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) AssetID() uint {
	return t.assetID
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) DamageType() string {
	return t.damageType
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Technician() string {
	return t.technician
}

func (t *Ticket) WorkLog() string {
	return t.workLog
}

func (t *Ticket) DocumentPath() string {
	return t.documentPath
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to any valid status. There is no
// transition graph: OPEN, IN_PROGRESS and CLOSED form an unordered set.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	t.description = description
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) UpdateDamageType(damageType string) {
	t.damageType = damageType
	t.updatedAt = time.Now()
}

func (t *Ticket) UpdateWorkLog(workLog string) {
	t.workLog = workLog
	t.updatedAt = time.Now()
}

// AttributeTo records the handling technician's display name. Empty or
// whitespace-only names leave the prior attribution untouched.
func (t *Ticket) AttributeTo(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	t.technician = name
	t.updatedAt = time.Now()
}

func (t *Ticket) SetDocumentPath(path string) {
	t.documentPath = path
}
