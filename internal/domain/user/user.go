// Package user holds staff principals: the accounts that log in to
// work the ticket queue. Requesters are not users; they never
// authenticate.
package user

import (
	"fmt"
	"time"
)

type User struct {
	id           uint
	name         string
	username     string
	email        string
	passwordHash string
	active       bool
	staff        bool
	createdAt    time.Time
	updatedAt    time.Time
}

func ReconstructUser(
	id uint,
	name, username, email, passwordHash string,
	active, staff bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		name:         name,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		active:       active,
		staff:        staff,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) IsStaff() bool {
	return u.staff
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// DisplayName returns the full name, falling back to the login handle
// when no name is on record.
func (u *User) DisplayName() string {
	if u.name != "" {
		return u.name
	}
	return u.username
}
