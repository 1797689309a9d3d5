// Package requester holds the person on whose behalf tickets are filed.
// Multiple requester records may coexist for the same physical person;
// no uniqueness is enforced on identification or email.
package requester

import (
	"fmt"
	"time"
)

type Requester struct {
	id             uint
	name           string
	identification string
	email          string
	phone          string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRequester(name, identification, email, phone string) (*Requester, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(identification) == 0 {
		return nil, fmt.Errorf("identification is required")
	}
	if len(identification) > 50 {
		return nil, fmt.Errorf("identification exceeds maximum length of 50 characters")
	}
	if len(phone) > 20 {
		return nil, fmt.Errorf("phone exceeds maximum length of 20 characters")
	}

	now := time.Now()
	return &Requester{
		name:           name,
		identification: identification,
		email:          email,
		phone:          phone,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRequester(
	id uint,
	name, identification, email, phone string,
	createdAt, updatedAt time.Time,
) (*Requester, error) {
	if id == 0 {
		return nil, fmt.Errorf("requester ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Requester{
		id:             id,
		name:           name,
		identification: identification,
		email:          email,
		phone:          phone,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Requester) ID() uint {
	return r.id
}

func (r *Requester) Name() string {
	return r.name
}

func (r *Requester) Identification() string {
	return r.identification
}

func (r *Requester) Email() string {
	return r.email
}

func (r *Requester) Phone() string {
	return r.phone
}

func (r *Requester) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Requester) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Requester) UpdateDetails(name, identification, email, phone string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(identification) == 0 {
		return fmt.Errorf("identification is required")
	}
	if len(identification) > 50 {
		return fmt.Errorf("identification exceeds maximum length of 50 characters")
	}
	if len(phone) > 20 {
		return fmt.Errorf("phone exceeds maximum length of 20 characters")
	}

	r.name = name
	r.identification = identification
	r.email = email
	r.phone = phone
	r.updatedAt = time.Now()
	return nil
}

func (r *Requester) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("requester ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("requester ID cannot be zero")
	}
	r.id = id
	return nil
}
