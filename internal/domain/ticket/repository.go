package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Filter narrows List results. An empty Statuses slice matches all
// statuses. Results are always ordered by creation time descending.
type Filter struct {
	Statuses    []vo.Status
	RequesterID *uint
	AssetID     *uint
}

// AssetTypeCount is a stats row: tickets counted per asset type.
type AssetTypeCount struct {
	EquipmentType string
	Count         int64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)

	// UpdateTechnician persists attribution as a separate idempotent
	// write, independent of the primary field update.
	UpdateTechnician(ctx context.Context, id uint, name string) error

	// UpdateDocumentPath records the rendered artifact location.
	UpdateDocumentPath(ctx context.Context, id uint, path string) error

	// Aggregate queries backing the stats endpoint.
	CountByStatus(ctx context.Context) (map[string]int64, error)
	ClosedCountByTechnician(ctx context.Context) (map[string]int64, error)
	CountByDamageType(ctx context.Context) (map[string]int64, error)
	TopAssetTypes(ctx context.Context, limit int) ([]AssetTypeCount, error)
}
