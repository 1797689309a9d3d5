package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/testutil"
	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
)

type documentFixture struct {
	renderer *testutil.MockRenderer
	uc       *GetTicketDocumentUseCase
	ticketID uint
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()

	ticketRepo := testutil.NewMockTicketRepository()
	requesterRepo := testutil.NewMockRequesterRepository()
	assetRepo := testutil.NewMockAssetRepository()
	renderer := testutil.NewMockRenderer()

	req, err := requester.NewRequester("Jane Roe", "CC-100", "jane@example.com", "")
	require.NoError(t, err)
	require.NoError(t, requesterRepo.Save(context.Background(), req))

	a, err := asset.NewAsset("Laptop", "SN-1001", "", "")
	require.NoError(t, err)
	require.NoError(t, assetRepo.Save(context.Background(), a))

	tk, err := ticket.NewTicket(req.ID(), a.ID(), "screen flickers", "")
	require.NoError(t, err)
	require.NoError(t, ticketRepo.Save(context.Background(), tk))

	log := testutil.NewMockLogger()
	publisher := NewTicketPublisher(
		ticketRepo, requesterRepo, assetRepo,
		renderer, testutil.NewMockDispatcher(), "ops@example.com", log,
	)

	return &documentFixture{
		renderer: renderer,
		uc:       NewGetTicketDocumentUseCase(ticketRepo, publisher, log),
		ticketID: tk.ID(),
	}
}

func TestGetTicketDocument_Success(t *testing.T) {
	f := newDocumentFixture(t)

	doc, err := f.uc.Execute(context.Background(), f.ticketID)
	require.NoError(t, err)

	assert.Equal(t, f.renderer.Path, doc.Path)
	assert.Equal(t, "ticket_1.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
}

func TestGetTicketDocument_RegeneratesEachCall(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.uc.Execute(context.Background(), f.ticketID)
	require.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), f.ticketID)
	require.NoError(t, err)

	assert.Len(t, f.renderer.Snapshots(), 2)
}

func TestGetTicketDocument_NotFound(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.uc.Execute(context.Background(), 999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetTicketDocument_RenderFailure(t *testing.T) {
	f := newDocumentFixture(t)
	f.renderer.Error = assert.AnError

	_, err := f.uc.Execute(context.Background(), f.ticketID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestGetTicketDocument_TextContentType(t *testing.T) {
	f := newDocumentFixture(t)
	f.renderer.Path = "/tmp/ticket_1.txt"

	doc, err := f.uc.Execute(context.Background(), f.ticketID)
	require.NoError(t, err)

	assert.Equal(t, "ticket_1.txt", doc.Filename)
	assert.Equal(t, "text/plain", doc.ContentType)
}
