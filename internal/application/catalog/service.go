// Package catalog manages the requester and asset directories backing
// the ticket queue. It is deliberately thin; tickets own the
// interesting behavior.
package catalog

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type Service struct {
	requesterRepo requester.RequesterRepository
	assetRepo     asset.AssetRepository
	logger        logger.Interface
}

func NewService(
	requesterRepo requester.RequesterRepository,
	assetRepo asset.AssetRepository,
	log logger.Interface,
) *Service {
	return &Service{
		requesterRepo: requesterRepo,
		assetRepo:     assetRepo,
		logger:        log,
	}
}

type RequesterInput struct {
	Name           string
	Identification string
	Email          string
	Phone          string
}

func (s *Service) CreateRequester(ctx context.Context, input RequesterInput) (*requester.Requester, error) {
	req, err := requester.NewRequester(input.Name, input.Identification, input.Email, input.Phone)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.requesterRepo.Save(ctx, req); err != nil {
		s.logger.Errorw("failed to save requester", "error", err)
		return nil, fmt.Errorf("failed to save requester: %w", err)
	}

	return req, nil
}

func (s *Service) GetRequester(ctx context.Context, id uint) (*requester.Requester, error) {
	return s.requesterRepo.FindByID(ctx, id)
}

func (s *Service) ListRequesters(ctx context.Context) ([]*requester.Requester, error) {
	return s.requesterRepo.List(ctx)
}

func (s *Service) UpdateRequester(ctx context.Context, id uint, input RequesterInput) (*requester.Requester, error) {
	req, err := s.requesterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.UpdateDetails(input.Name, input.Identification, input.Email, input.Phone); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.requesterRepo.Update(ctx, req); err != nil {
		s.logger.Errorw("failed to update requester", "requester_id", id, "error", err)
		return nil, fmt.Errorf("failed to update requester: %w", err)
	}

	return req, nil
}

// DeleteRequester removes the requester and all tickets filed on their
// behalf.
func (s *Service) DeleteRequester(ctx context.Context, id uint) error {
	if err := s.requesterRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFoundError(err) {
			return err
		}
		s.logger.Errorw("failed to delete requester", "requester_id", id, "error", err)
		return fmt.Errorf("failed to delete requester: %w", err)
	}

	s.logger.Infow("requester deleted with owned tickets", "requester_id", id)
	return nil
}

type AssetInput struct {
	Type   string
	Serial string
	Brand  string
	Model  string
}

func (s *Service) CreateAsset(ctx context.Context, input AssetInput) (*asset.Asset, error) {
	a, err := asset.NewAsset(input.Type, input.Serial, input.Brand, input.Model)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		s.logger.Errorw("failed to save asset", "error", err)
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}

	return a, nil
}

func (s *Service) GetAsset(ctx context.Context, id uint) (*asset.Asset, error) {
	return s.assetRepo.FindByID(ctx, id)
}

func (s *Service) ListAssets(ctx context.Context) ([]*asset.Asset, error) {
	return s.assetRepo.List(ctx)
}

func (s *Service) UpdateAsset(ctx context.Context, id uint, input AssetInput) (*asset.Asset, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.UpdateDetails(input.Type, input.Serial, input.Brand, input.Model); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.assetRepo.Update(ctx, a); err != nil {
		s.logger.Errorw("failed to update asset", "asset_id", id, "error", err)
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return a, nil
}

// DeleteAsset removes the asset and all tickets filed against it.
func (s *Service) DeleteAsset(ctx context.Context, id uint) error {
	if err := s.assetRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFoundError(err) {
			return err
		}
		s.logger.Errorw("failed to delete asset", "asset_id", id, "error", err)
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	s.logger.Infow("asset deleted with owned tickets", "asset_id", id)
	return nil
}
