package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/testutil"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

type stubUserRepository struct {
	staff []*user.User
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	return s.staff, nil
}

func makeStaff(t *testing.T, name, username string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(1, name, username, username+"@example.com", "hash", true, true, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func seedTicket(t *testing.T, repo *testutil.MockTicketRepository, status vo.Status, damageType, technician string) {
	t.Helper()

	tk, err := ticket.NewTicket(1, 1, "issue", damageType)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	if status != vo.StatusOpen {
		require.NoError(t, tk.ChangeStatus(status))
	}
	if technician != "" {
		tk.AttributeTo(technician)
	}
}

func TestGetStats(t *testing.T) {
	ticketRepo := testutil.NewMockTicketRepository()
	seedTicket(t, ticketRepo, vo.StatusOpen, "Screen", "")
	seedTicket(t, ticketRepo, vo.StatusOpen, "Screen", "")
	seedTicket(t, ticketRepo, vo.StatusInProgress, "Keyboard", "tech1")
	seedTicket(t, ticketRepo, vo.StatusClosed, "Screen", "tech1")
	seedTicket(t, ticketRepo, vo.StatusClosed, "", "tech2")

	userRepo := &stubUserRepository{staff: []*user.User{
		makeStaff(t, "Tech One", "tech1"),
	}}

	uc := NewGetStatsUseCase(ticketRepo, userRepo, testutil.NewMockLogger())

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.InProcess)
	assert.Equal(t, int64(2), stats.Closed)
	assert.Equal(t, int64(5), stats.Total)

	assert.Equal(t, []string{"Tech One"}, stats.Technicians)
	assert.Equal(t, int64(1), stats.TechnicianPerformance["tech1"])
	assert.Equal(t, int64(1), stats.TechnicianPerformance["tech2"])

	// Tickets without a damage type are excluded from failure counts.
	assert.Equal(t, int64(3), stats.FailureTypes["Screen"])
	assert.Equal(t, int64(1), stats.FailureTypes["Keyboard"])
	assert.NotContains(t, stats.FailureTypes, "")
}

func TestGetStats_Empty(t *testing.T) {
	uc := NewGetStatsUseCase(
		testutil.NewMockTicketRepository(),
		&stubUserRepository{},
		testutil.NewMockLogger(),
	)

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.Technicians)
	assert.Empty(t, stats.TechnicianPerformance)
}
