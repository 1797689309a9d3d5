package mappers

import (
	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

func RequesterToModel(r *requester.Requester) *models.RequesterModel {
	return &models.RequesterModel{
		ID:             r.ID(),
		Name:           r.Name(),
		Identification: r.Identification(),
		Email:          r.Email(),
		Phone:          r.Phone(),
		CreatedAt:      r.CreatedAt().UnixMilli(),
		UpdatedAt:      r.UpdatedAt().UnixMilli(),
	}
}

func RequesterToDomain(model *models.RequesterModel) (*requester.Requester, error) {
	return requester.ReconstructRequester(
		model.ID,
		model.Name,
		model.Identification,
		model.Email,
		model.Phone,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func AssetToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:        a.ID(),
		Type:      a.Type(),
		Serial:    a.Serial(),
		Brand:     a.Brand(),
		Model:     a.Model(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}
}

func AssetToDomain(model *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		model.ID,
		model.Type,
		model.Serial,
		model.Brand,
		model.Model,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.Active,
		model.Staff,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
