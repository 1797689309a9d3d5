package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		requesterID uint
		assetID     uint
		description string
		damageType  string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid ticket",
			requesterID: 1,
			assetID:     2,
			description: "screen flickers on boot",
			damageType:  "hardware",
		},
		{
			name:        "damage type may be empty",
			requesterID: 1,
			assetID:     2,
			description: "no enciende",
		},
		{
			name:        "zero requester ID",
			requesterID: 0,
			assetID:     2,
			description: "broken",
			wantErr:     true,
			errMsg:      "requester ID is required",
		},
		{
			name:        "zero asset ID",
			requesterID: 1,
			assetID:     0,
			description: "broken",
			wantErr:     true,
			errMsg:      "asset ID is required",
		},
		{
			name:        "empty description",
			requesterID: 1,
			assetID:     2,
			description: "",
			wantErr:     true,
			errMsg:      "description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.requesterID, tt.assetID, tt.description, tt.damageType)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tk)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, vo.StatusOpen, tk.Status())
				assert.Equal(t, tt.requesterID, tk.RequesterID())
				assert.Equal(t, tt.assetID, tk.AssetID())
				assert.Equal(t, tt.damageType, tk.DamageType())
				assert.Empty(t, tk.Technician())
				assert.Empty(t, tk.WorkLog())
				assert.NotZero(t, tk.CreatedAt())
			}
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	// The status set is unordered: every pair of valid statuses must be
	// an accepted transition, including straight back to OPEN.
	statuses := []vo.Status{vo.StatusOpen, vo.StatusInProgress, vo.StatusClosed}

	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				tk := newTestTicket(t)
				require.NoError(t, tk.ChangeStatus(from))
				require.NoError(t, tk.ChangeStatus(to))
				assert.Equal(t, to, tk.Status())
			})
		}
	}

	t.Run("invalid status rejected", func(t *testing.T) {
		tk := newTestTicket(t)
		err := tk.ChangeStatus(vo.Status("RESOLVED"))
		assert.Error(t, err)
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})
}

func TestTicket_CreatedAtImmutable(t *testing.T) {
	tk := newTestTicket(t)
	created := tk.CreatedAt()

	time.Sleep(time.Millisecond)
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	tk.UpdateWorkLog("replaced the power supply")
	tk.AttributeTo("Carlos Ruiz")

	assert.Equal(t, created, tk.CreatedAt())
	assert.True(t, tk.UpdatedAt().After(created))
}

func TestTicket_AttributeTo(t *testing.T) {
	tests := []struct {
		name     string
		prior    string
		input    string
		expected string
	}{
		{name: "sets trimmed name", input: "  Carlos Ruiz  ", expected: "Carlos Ruiz"},
		{name: "empty input keeps prior", prior: "Ana", input: "", expected: "Ana"},
		{name: "whitespace input keeps prior", prior: "Ana", input: "   ", expected: "Ana"},
		{name: "overwrites prior attribution", prior: "Ana", input: "Luis", expected: "Luis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTicket(t)
			tk.AttributeTo(tt.prior)
			tk.AttributeTo(tt.input)
			assert.Equal(t, tt.expected, tk.Technician())
		})
	}
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now()

	t.Run("valid reconstruction", func(t *testing.T) {
		tk, err := ReconstructTicket(7, 1, 2, "no enciende", "hardware",
			vo.StatusClosed, "Carlos", "swapped RAM", "/tmp/ticket_7.pdf", now, now)
		require.NoError(t, err)
		assert.Equal(t, uint(7), tk.ID())
		assert.Equal(t, "Carlos", tk.Technician())
		assert.Equal(t, "/tmp/ticket_7.pdf", tk.DocumentPath())
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		_, err := ReconstructTicket(0, 1, 2, "x", "", vo.StatusOpen, "", "", "", now, now)
		assert.Error(t, err)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := ReconstructTicket(7, 1, 2, "x", "", vo.Status("NEW"), "", "", "", now, now)
		assert.Error(t, err)
	})
}

func TestTicket_SetID(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.SetID(42))
	assert.Equal(t, uint(42), tk.ID())

	assert.Error(t, tk.SetID(43), "ID must only be assignable once")
}

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, 2, "test description", "hardware")
	require.NoError(t, err)
	return tk
}
