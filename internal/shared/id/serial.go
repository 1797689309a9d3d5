// Package id generates synthetic asset serials for public intake
// submissions that reference equipment with no inventory record.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Uppercase alphanumerics only; serials are printed on repair slips
	// and read back over the phone.
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// IntakeSerialPrefix marks serials synthesized for public intake
	// asset stubs.
	IntakeSerialPrefix = "SOL-"

	// IntakeSerialLength is the number of random characters after the
	// prefix. Collision probability at this length is negligible for
	// the expected ticket volume; no retry-on-collision is performed.
	IntakeSerialLength = 8
)

// Generate creates a random uppercase alphanumeric token of the given
// length using crypto/rand. Reading the system entropy source cannot
// fail in practice; a failure here panics rather than forcing every
// caller to thread an unreachable error.
func Generate(length int) string {
	if length <= 0 {
		length = IntakeSerialLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			panic(fmt.Sprintf("id: entropy source unavailable: %v", err))
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result)
}

// NewIntakeSerial generates a synthetic asset serial in the format
// "SOL-XXXXXXXX".
func NewIntakeSerial() string {
	return IntakeSerialPrefix + Generate(IntakeSerialLength)
}
