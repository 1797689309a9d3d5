// Package asset holds the equipment records tickets are filed against.
// Public intake creates stubs with a synthesized serial and empty
// brand/model rather than reusing inventory.
package asset

import (
	"fmt"
	"time"
)

type Asset struct {
	id        uint
	assetType string
	serial    string
	brand     string
	model     string
	createdAt time.Time
	updatedAt time.Time
}

func NewAsset(assetType, serial, brand, model string) (*Asset, error) {
	if len(assetType) == 0 {
		return nil, fmt.Errorf("asset type is required")
	}
	if len(assetType) > 50 {
		return nil, fmt.Errorf("asset type exceeds maximum length of 50 characters")
	}
	if len(serial) == 0 {
		return nil, fmt.Errorf("serial is required")
	}
	if len(serial) > 50 {
		return nil, fmt.Errorf("serial exceeds maximum length of 50 characters")
	}

	now := time.Now()
	return &Asset{
		assetType: assetType,
		serial:    serial,
		brand:     brand,
		model:     model,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAsset(
	id uint,
	assetType, serial, brand, model string,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if len(assetType) == 0 {
		return nil, fmt.Errorf("asset type is required")
	}

	return &Asset{
		id:        id,
		assetType: assetType,
		serial:    serial,
		brand:     brand,
		model:     model,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Asset) ID() uint {
	return a.id
}

func (a *Asset) Type() string {
	return a.assetType
}

func (a *Asset) Serial() string {
	return a.serial
}

func (a *Asset) Brand() string {
	return a.brand
}

func (a *Asset) Model() string {
	return a.model
}

func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Asset) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Asset) UpdateDetails(assetType, serial, brand, model string) error {
	if len(assetType) == 0 {
		return fmt.Errorf("asset type is required")
	}
	if len(assetType) > 50 {
		return fmt.Errorf("asset type exceeds maximum length of 50 characters")
	}
	if len(serial) == 0 {
		return fmt.Errorf("serial is required")
	}
	if len(serial) > 50 {
		return fmt.Errorf("serial exceeds maximum length of 50 characters")
	}

	a.assetType = assetType
	a.serial = serial
	a.brand = brand
	a.model = model
	a.updatedAt = time.Now()
	return nil
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}
