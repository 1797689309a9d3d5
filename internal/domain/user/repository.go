package user

import "context"

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ListStaff returns the principals flagged as staff, for the
	// technician roster in stats.
	ListStaff(ctx context.Context) ([]*User, error)
}
