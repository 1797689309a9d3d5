package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/stats/usecases"
	"helpdesk/internal/application/ticket/testutil"
	domainTicket "helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

type stubUserRepository struct {
	staff []*user.User
}

func (s *stubUserRepository) FindByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindByUsername(_ context.Context, _ string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserRepository) ListStaff(_ context.Context) ([]*user.User, error) {
	return s.staff, nil
}

func seedTicket(t *testing.T, repo *testutil.MockTicketRepository, status vo.Status, technician, damageType string) {
	t.Helper()

	nt, err := domainTicket.NewTicket(1, 1, "Broken equipment reported", damageType)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), nt))

	if status != vo.StatusOpen {
		require.NoError(t, nt.ChangeStatus(status))
	}
	if technician != "" {
		nt.AttributeTo(technician)
	}
	require.NoError(t, repo.Update(context.Background(), nt))
}

func TestStatsHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tickets := testutil.NewMockTicketRepository()
	seedTicket(t, tickets, vo.StatusOpen, "", "Screen")
	seedTicket(t, tickets, vo.StatusInProgress, "", "Screen")
	seedTicket(t, tickets, vo.StatusClosed, "Carlos Gomez", "Keyboard")

	staff, err := user.ReconstructUser(
		1, "Carlos Gomez", "cgomez", "cgomez@example.com", "hash",
		true, true, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	uc := usecases.NewGetStatsUseCase(tickets, &stubUserRepository{staff: []*user.User{staff}}, testutil.NewMockLogger())
	handler := NewStatsHandler(uc)

	router := gin.New()
	router.GET("/stats", handler.GetStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, float64(1), resp["pending"])
	assert.Equal(t, float64(1), resp["in_process"])
	assert.Equal(t, float64(1), resp["closed"])
	assert.Equal(t, float64(3), resp["total"])
	assert.Equal(t, float64(3), resp["totalTickets"])
	assert.Equal(t, float64(1), resp["completedTickets"])
	assert.Equal(t, []any{"Carlos Gomez"}, resp["technicians"])

	perf, ok := resp["technicianPerformance"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), perf["Carlos Gomez"])

	failures, ok := resp["failureTypes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), failures["Screen"])
}

func TestStatsHandler_GetStats_EmptyCollectionsNotNull(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := usecases.NewGetStatsUseCase(
		testutil.NewMockTicketRepository(),
		&stubUserRepository{},
		testutil.NewMockLogger(),
	)
	handler := NewStatsHandler(uc)

	router := gin.New()
	router.GET("/stats", handler.GetStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, `"technicians":null`)
	assert.NotContains(t, body, `"technicianPerformance":null`)
	assert.NotContains(t, body, `"failureTypes":null`)
}
