package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/requester"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

type RequesterRepository struct {
	db *gorm.DB
}

func NewRequesterRepository(db *gorm.DB) *RequesterRepository {
	return &RequesterRepository{db: db}
}

func (r *RequesterRepository) Save(ctx context.Context, req *requester.Requester) error {
	model := mappers.RequesterToModel(req)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save requester: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *RequesterRepository) Update(ctx context.Context, req *requester.Requester) error {
	model := mappers.RequesterToModel(req)

	result := r.db.WithContext(ctx).
		Model(&models.RequesterModel{}).
		Where("id = ?", model.ID).
		Select("name", "identification", "email", "phone", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update requester: %w", result.Error)
	}

	return nil
}

func (r *RequesterRepository) FindByID(ctx context.Context, id uint) (*requester.Requester, error) {
	var model models.RequesterModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("requester not found")
		}
		return nil, fmt.Errorf("failed to find requester: %w", err)
	}

	return mappers.RequesterToDomain(&model)
}

func (r *RequesterRepository) FindByIdentification(ctx context.Context, identification string) (*requester.Requester, error) {
	var model models.RequesterModel

	err := r.db.WithContext(ctx).
		Where("identification = ?", identification).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("requester not found")
		}
		return nil, fmt.Errorf("failed to find requester: %w", err)
	}

	return mappers.RequesterToDomain(&model)
}

func (r *RequesterRepository) List(ctx context.Context) ([]*requester.Requester, error) {
	var requesterModels []models.RequesterModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&requesterModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requesters: %w", err)
	}

	requesters := make([]*requester.Requester, len(requesterModels))
	for i, model := range requesterModels {
		req, err := mappers.RequesterToDomain(&model)
		if err != nil {
			return nil, err
		}
		requesters[i] = req
	}

	return requesters, nil
}

func (r *RequesterRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.RequesterModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check requester existence: %w", err)
	}

	return count > 0, nil
}

// Delete removes the requester and every ticket that references it in
// a single transaction. The schema carries no FK constraints, so the
// cascade is done here.
func (r *RequesterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requester_id = ?", id).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete requester tickets: %w", err)
		}

		result := tx.Delete(&models.RequesterModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete requester: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("requester not found")
		}

		return nil
	})
}
