package asset

import "context"

type AssetRepository interface {
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	FindByID(ctx context.Context, id uint) (*Asset, error)
	FindBySerial(ctx context.Context, serial string) (*Asset, error)
	List(ctx context.Context) ([]*Asset, error)
	Exists(ctx context.Context, id uint) (bool, error)

	// Delete removes the asset and cascades deletion of all tickets
	// referencing it, inside one transaction.
	Delete(ctx context.Context, id uint) error
}
