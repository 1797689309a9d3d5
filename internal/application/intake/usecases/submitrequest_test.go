package usecases

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/testutil"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	apperrors "helpdesk/internal/shared/errors"
)

type submitFixture struct {
	ticketRepo    *testutil.MockTicketRepository
	requesterRepo *testutil.MockRequesterRepository
	assetRepo     *testutil.MockAssetRepository
	dispatcher    *testutil.MockDispatcher
	uc            *SubmitRequestUseCase
}

func newSubmitFixture(t *testing.T) *submitFixture {
	t.Helper()

	f := &submitFixture{
		ticketRepo:    testutil.NewMockTicketRepository(),
		requesterRepo: testutil.NewMockRequesterRepository(),
		assetRepo:     testutil.NewMockAssetRepository(),
		dispatcher:    testutil.NewMockDispatcher(),
	}

	log := testutil.NewMockLogger()
	publisher := ticketusecases.NewTicketPublisher(
		f.ticketRepo, f.requesterRepo, f.assetRepo,
		testutil.NewMockRenderer(), f.dispatcher, "ops@example.com", log,
	)
	createTicket := ticketusecases.NewCreateTicketUseCase(
		f.ticketRepo, f.requesterRepo, f.assetRepo, publisher, log,
	)
	f.uc = NewSubmitRequestUseCase(f.requesterRepo, f.assetRepo, createTicket, log)

	return f
}

func validCommand() SubmitRequestCommand {
	return SubmitRequestCommand{
		PersonName:    "Jane Roe",
		PersonID:      "CC-100",
		EquipmentType: "Printer",
		DamageType:    "Paper jam",
		Description:   "Paper stuck in tray 2",
	}
}

func TestSubmitRequest_Success(t *testing.T) {
	f := newSubmitFixture(t)

	result, err := f.uc.Execute(context.Background(), validCommand())
	require.NoError(t, err)
	assert.NotZero(t, result.TicketID)

	tk, err := f.ticketRepo.FindByID(context.Background(), result.TicketID)
	require.NoError(t, err)
	assert.Equal(t, "OPEN", tk.Status().String())

	// Without an email the requester gets the sentinel address and no
	// notification is dispatched.
	req, err := f.requesterRepo.FindByID(context.Background(), tk.RequesterID())
	require.NoError(t, err)
	assert.Equal(t, "noreply@local", req.Email())
	assert.Empty(t, f.dispatcher.Calls())
}

func TestSubmitRequest_AssetStubGetsGeneratedSerial(t *testing.T) {
	f := newSubmitFixture(t)

	result, err := f.uc.Execute(context.Background(), validCommand())
	require.NoError(t, err)

	tk, err := f.ticketRepo.FindByID(context.Background(), result.TicketID)
	require.NoError(t, err)

	a, err := f.assetRepo.FindByID(context.Background(), tk.AssetID())
	require.NoError(t, err)
	assert.Equal(t, "Printer", a.Type())
	assert.Regexp(t, regexp.MustCompile(`^SOL-[0-9A-Z]{8}$`), a.Serial())
	assert.Empty(t, a.Brand())
	assert.Empty(t, a.Model())
}

func TestSubmitRequest_WithEmailNotifies(t *testing.T) {
	f := newSubmitFixture(t)

	cmd := validCommand()
	cmd.Email = "jane@example.com"

	_, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	calls := f.dispatcher.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"jane@example.com"}, calls[0].Recipients)
}

func TestSubmitRequest_ValidationErrorMap(t *testing.T) {
	f := newSubmitFixture(t)

	_, err := f.uc.Execute(context.Background(), SubmitRequestCommand{
		Email: "not-an-email",
		Phone: "123456789012345678901",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	for _, field := range []string{"personName", "personId", "equipmentType", "damageType", "description", "email", "phone"} {
		assert.Contains(t, appErr.Fields, field)
	}
}

func TestSubmitRequest_FieldLengthLimits(t *testing.T) {
	f := newSubmitFixture(t)

	long := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'x'
		}
		return string(b)
	}

	cmd := validCommand()
	cmd.PersonName = long(101)
	cmd.PersonID = long(51)
	cmd.EquipmentType = long(51)

	_, err := f.uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "personName")
	assert.Contains(t, appErr.Fields, "personId")
	assert.Contains(t, appErr.Fields, "equipmentType")
	assert.NotContains(t, appErr.Fields, "damageType")
}

func TestSubmitRequest_NothingPersistedOnValidationFailure(t *testing.T) {
	f := newSubmitFixture(t)

	_, err := f.uc.Execute(context.Background(), SubmitRequestCommand{})
	require.Error(t, err)

	requesters, err := f.requesterRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, requesters)

	assets, err := f.assetRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets)
}
