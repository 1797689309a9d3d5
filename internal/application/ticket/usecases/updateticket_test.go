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

type updateTicketFixture struct {
	ticketRepo *testutil.MockTicketRepository
	renderer   *testutil.MockRenderer
	dispatcher *testutil.MockDispatcher
	uc         *UpdateTicketUseCase
	ticketID   uint
}

func newUpdateTicketFixture(t *testing.T) *updateTicketFixture {
	t.Helper()

	f := &updateTicketFixture{
		ticketRepo: testutil.NewMockTicketRepository(),
		renderer:   testutil.NewMockRenderer(),
		dispatcher: testutil.NewMockDispatcher(),
	}

	requesterRepo := testutil.NewMockRequesterRepository()
	assetRepo := testutil.NewMockAssetRepository()

	req, err := requester.NewRequester("Jane Roe", "CC-100", "jane@example.com", "")
	require.NoError(t, err)
	require.NoError(t, requesterRepo.Save(context.Background(), req))

	a, err := asset.NewAsset("Laptop", "SN-1001", "", "")
	require.NoError(t, err)
	require.NoError(t, assetRepo.Save(context.Background(), a))

	tk, err := ticket.NewTicket(req.ID(), a.ID(), "screen flickers", "Screen")
	require.NoError(t, err)
	require.NoError(t, f.ticketRepo.Save(context.Background(), tk))
	f.ticketID = tk.ID()

	log := testutil.NewMockLogger()
	publisher := NewTicketPublisher(
		f.ticketRepo, requesterRepo, assetRepo,
		f.renderer, f.dispatcher, "ops@example.com", log,
	)
	f.uc = NewUpdateTicketUseCase(f.ticketRepo, publisher, log)

	return f
}

func strPtr(s string) *string { return &s }

func TestUpdateTicket_PartialUpdate(t *testing.T) {
	f := newUpdateTicketFixture(t)

	result, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    f.ticketID,
		Description: strPtr("screen flickers constantly"),
		WorkLog:     strPtr("ran diagnostics"),
	})
	require.NoError(t, err)
	assert.Equal(t, "OPEN", result.Status)

	saved, err := f.ticketRepo.FindByID(context.Background(), f.ticketID)
	require.NoError(t, err)
	assert.Equal(t, "screen flickers constantly", saved.Description())
	assert.Equal(t, "ran diagnostics", saved.WorkLog())
	assert.Equal(t, "Screen", saved.DamageType())
}

func TestUpdateTicket_NotFound(t *testing.T) {
	f := newUpdateTicketFixture(t)

	_, err := f.uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 999})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateTicket_InvalidStatus(t *testing.T) {
	f := newUpdateTicketFixture(t)

	_, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("BROKEN"),
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateTicket_AttributionPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		cmd        UpdateTicketCommand
		expected   string
		priorValue string
	}{
		{
			name: "explicit technician wins over actor",
			cmd: UpdateTicketCommand{
				Technician:    strPtr("  tech-explicit  "),
				ActorName:     "Actor Name",
				ActorUsername: "actor",
			},
			expected: "tech-explicit",
		},
		{
			name: "actor name when no explicit technician",
			cmd: UpdateTicketCommand{
				ActorName:     "Actor Name",
				ActorUsername: "actor",
			},
			expected: "Actor Name",
		},
		{
			name: "username fallback when name empty",
			cmd: UpdateTicketCommand{
				ActorUsername: "actor",
			},
			expected: "actor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUpdateTicketFixture(t)
			tt.cmd.TicketID = f.ticketID
			tt.cmd.WorkLog = strPtr("work done")

			result, err := f.uc.Execute(context.Background(), tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Technician)
		})
	}
}

func TestUpdateTicket_NoActorLeavesAttributionUntouched(t *testing.T) {
	f := newUpdateTicketFixture(t)

	// Seed a prior attribution.
	_, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   f.ticketID,
		Technician: strPtr("tech1"),
	})
	require.NoError(t, err)

	// Unauthenticated update with no technician field.
	result, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		WorkLog:  strPtr("more work"),
	})
	require.NoError(t, err)
	assert.Equal(t, "tech1", result.Technician)
}

func TestUpdateTicket_CloseDispatchesOnce(t *testing.T) {
	f := newUpdateTicketFixture(t)

	result, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("CLOSED"),
	})
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", result.Status)

	assert.Len(t, f.renderer.Snapshots(), 1)
	require.Len(t, f.dispatcher.Calls(), 1)
	assert.Equal(t, []string{"jane@example.com"}, f.dispatcher.Calls()[0].Recipients)
}

func TestUpdateTicket_SavingClosedTicketRedispatches(t *testing.T) {
	f := newUpdateTicketFixture(t)

	_, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("CLOSED"),
	})
	require.NoError(t, err)
	require.Len(t, f.dispatcher.Calls(), 1)

	// Saving a ticket that stays CLOSED regenerates the document and
	// notifies again, one dispatch per save.
	_, err = f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("CLOSED"),
		WorkLog:  strPtr("final notes"),
	})
	require.NoError(t, err)
	assert.Len(t, f.renderer.Snapshots(), 2)
	assert.Len(t, f.dispatcher.Calls(), 2)
}

func TestUpdateTicket_NonStatusUpdateOfClosedTicketRedispatches(t *testing.T) {
	f := newUpdateTicketFixture(t)

	_, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("CLOSED"),
	})
	require.NoError(t, err)
	require.Len(t, f.dispatcher.Calls(), 1)

	// The resulting status is what matters, not whether the request
	// carried one.
	_, err = f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		WorkLog:  strPtr("post-closure audit note"),
	})
	require.NoError(t, err)
	assert.Len(t, f.dispatcher.Calls(), 2)
}

func TestUpdateTicket_ReopenAllowed(t *testing.T) {
	f := newUpdateTicketFixture(t)

	_, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("CLOSED"),
	})
	require.NoError(t, err)

	result, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("IN_PROGRESS"),
	})
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", result.Status)
}

func TestUpdateTicket_AttributionFailureDoesNotFailUpdate(t *testing.T) {
	f := newUpdateTicketFixture(t)
	f.ticketRepo.UpdateTechnicianError = assert.AnError

	result, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   f.ticketID,
		WorkLog:    strPtr("work"),
		Technician: strPtr("tech1"),
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestUpdateTicket_CloseDispatchFailureSwallowed(t *testing.T) {
	f := newUpdateTicketFixture(t)
	f.dispatcher.Error = apperrors.NewTransportError("smtp down")

	result, err := f.uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: f.ticketID,
		Status:   strPtr("CLOSED"),
	})
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", result.Status)
}
