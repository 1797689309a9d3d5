package requester

import "context"

type RequesterRepository interface {
	Save(ctx context.Context, r *Requester) error
	Update(ctx context.Context, r *Requester) error
	FindByID(ctx context.Context, id uint) (*Requester, error)
	FindByIdentification(ctx context.Context, identification string) (*Requester, error)
	List(ctx context.Context) ([]*Requester, error)
	Exists(ctx context.Context, id uint) (bool, error)

	// Delete removes the requester and cascades deletion of all tickets
	// referencing it, inside one transaction.
	Delete(ctx context.Context, id uint) error
}
