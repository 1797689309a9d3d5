package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/asset"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := mappers.AssetToModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := mappers.AssetToModel(a)

	result := r.db.WithContext(ctx).
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Select("type", "serial", "brand", "model", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return mappers.AssetToDomain(&model)
}

func (r *AssetRepository) FindBySerial(ctx context.Context, serial string) (*asset.Asset, error) {
	var model models.AssetModel

	err := r.db.WithContext(ctx).
		Where("serial = ?", serial).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return mappers.AssetToDomain(&model)
}

func (r *AssetRepository) List(ctx context.Context) ([]*asset.Asset, error) {
	var assetModels []models.AssetModel

	err := r.db.WithContext(ctx).
		Order("type ASC, serial ASC").
		Find(&assetModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, len(assetModels))
	for i, model := range assetModels {
		a, err := mappers.AssetToDomain(&model)
		if err != nil {
			return nil, err
		}
		assets[i] = a
	}

	return assets, nil
}

func (r *AssetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.AssetModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check asset existence: %w", err)
	}

	return count > 0, nil
}

// Delete removes the asset and every ticket that references it in a
// single transaction, mirroring the requester cascade.
func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete asset tickets: %w", err)
		}

		result := tx.Delete(&models.AssetModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete asset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("asset not found")
		}

		return nil
	})
}
