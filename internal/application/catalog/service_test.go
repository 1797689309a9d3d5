package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/testutil"
	apperrors "helpdesk/internal/shared/errors"
)

func newService() *Service {
	return NewService(
		testutil.NewMockRequesterRepository(),
		testutil.NewMockAssetRepository(),
		testutil.NewMockLogger(),
	)
}

func TestService_RequesterLifecycle(t *testing.T) {
	s := newService()
	ctx := context.Background()

	req, err := s.CreateRequester(ctx, RequesterInput{
		Name:           "Jane Roe",
		Identification: "CC-100",
		Email:          "jane@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, req.ID())

	got, err := s.GetRequester(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", got.Name())

	updated, err := s.UpdateRequester(ctx, req.ID(), RequesterInput{
		Name:           "Jane R. Roe",
		Identification: "CC-100",
		Phone:          "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane R. Roe", updated.Name())
	assert.Equal(t, "555-0100", updated.Phone())

	require.NoError(t, s.DeleteRequester(ctx, req.ID()))

	_, err = s.GetRequester(ctx, req.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestService_CreateRequesterValidation(t *testing.T) {
	s := newService()

	_, err := s.CreateRequester(context.Background(), RequesterInput{})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestService_AssetLifecycle(t *testing.T) {
	s := newService()
	ctx := context.Background()

	a, err := s.CreateAsset(ctx, AssetInput{
		Type:   "Laptop",
		Serial: "SN-1001",
		Brand:  "Acme",
	})
	require.NoError(t, err)
	require.NotZero(t, a.ID())

	list, err := s.ListAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := s.UpdateAsset(ctx, a.ID(), AssetInput{
		Type:   "Laptop",
		Serial: "SN-1001",
		Brand:  "Acme",
		Model:  "X2",
	})
	require.NoError(t, err)
	assert.Equal(t, "X2", updated.Model())

	require.NoError(t, s.DeleteAsset(ctx, a.ID()))

	_, err = s.GetAsset(ctx, a.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestService_DeleteUnknown(t *testing.T) {
	s := newService()

	assert.True(t, apperrors.IsNotFoundError(s.DeleteRequester(context.Background(), 42)))
	assert.True(t, apperrors.IsNotFoundError(s.DeleteAsset(context.Background(), 42)))
}
