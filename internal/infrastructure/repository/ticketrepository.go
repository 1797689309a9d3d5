package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("description", "damage_type", "status", "work_log", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to
	// existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.AssetID != nil {
		query = query.Where("asset_id = ?", *filter.AssetID)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

// UpdateTechnician writes attribution independently of the primary
// field update so a failure here cannot abort it. Writing the same
// name twice is a no-op.
func (r *TicketRepository) UpdateTechnician(ctx context.Context, id uint, name string) error {
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("technician", name)

	if result.Error != nil {
		return fmt.Errorf("failed to update technician: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) UpdateDocumentPath(ctx context.Context, id uint, path string) error {
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("document_path", path)

	if result.Error != nil {
		return fmt.Errorf("failed to update document path: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) ClosedCountByTechnician(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Technician string
		Count      int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("technician, COUNT(*) as count").
		Where("status = ?", "CLOSED").
		Where("technician <> ''").
		Group("technician").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count closed tickets by technician: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Technician] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) CountByDamageType(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		DamageType string
		Count      int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("damage_type, COUNT(*) as count").
		Where("damage_type <> ''").
		Group("damage_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by damage type: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.DamageType] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) TopAssetTypes(ctx context.Context, limit int) ([]ticket.AssetTypeCount, error) {
	var rows []struct {
		Type  string
		Count int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("assets.type, COUNT(*) as count").
		Joins("JOIN assets ON assets.id = tickets.asset_id").
		Group("assets.type").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank asset types: %w", err)
	}

	result := make([]ticket.AssetTypeCount, len(rows))
	for i, row := range rows {
		result[i] = ticket.AssetTypeCount{EquipmentType: row.Type, Count: row.Count}
	}
	return result, nil
}
