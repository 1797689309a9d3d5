package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.RequesterModel{},
		&models.AssetModel{},
		&models.TicketModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, requesterID, assetID uint, description, damageType string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(requesterID, assetID, description, damageType)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save assigns ID", func(t *testing.T) {
		tk := createTestTicket(t, 1, 1, "Display flickers on boot", "Screen")

		err := repo.Save(ctx, tk)
		require.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		tk := createTestTicket(t, 2, 3, "Keyboard does not respond", "Hardware")
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, tk.RequesterID(), found.RequesterID())
		assert.Equal(t, tk.AssetID(), found.AssetID())
		assert.Equal(t, tk.Description(), found.Description())
		assert.Equal(t, vo.StatusOpen, found.Status())
	})

	t.Run("missing ticket returns not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, 1, 1, "Display flickers on boot", "Screen")
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	tk.UpdateWorkLog("Ordered replacement cable")
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, found.Status())
	assert.Contains(t, found.WorkLog(), "Ordered replacement cable")
}

func TestTicketRepository_UpdateTechnician(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, 1, 1, "Display flickers on boot", "Screen")
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, repo.UpdateTechnician(ctx, tk.ID(), "Carlos Gomez"))
	// Idempotent: repeating the same write succeeds.
	require.NoError(t, repo.UpdateTechnician(ctx, tk.ID(), "Carlos Gomez"))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Carlos Gomez", found.Technician())
}

func TestTicketRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	open := createTestTicket(t, 1, 1, "Display flickers on boot", "Screen")
	require.NoError(t, repo.Save(ctx, open))

	inProgress := createTestTicket(t, 1, 2, "Keyboard does not respond", "Hardware")
	require.NoError(t, repo.Save(ctx, inProgress))
	require.NoError(t, inProgress.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, repo.Update(ctx, inProgress))

	closed := createTestTicket(t, 2, 1, "No network connectivity", "Network")
	require.NoError(t, repo.Save(ctx, closed))
	require.NoError(t, closed.ChangeStatus(vo.StatusClosed))
	require.NoError(t, repo.Update(ctx, closed))

	t.Run("no filter returns all", func(t *testing.T) {
		all, err := repo.List(ctx, ticket.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		pending, err := repo.List(ctx, ticket.Filter{
			Statuses: vo.PendingStatuses(),
		})
		require.NoError(t, err)
		assert.Len(t, pending, 2)
	})

	t.Run("requester filter", func(t *testing.T) {
		requesterID := uint(2)
		mine, err := repo.List(ctx, ticket.Filter{RequesterID: &requesterID})
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, closed.ID(), mine[0].ID())
	})
}

func TestTicketRepository_List_OrdersByCreationDescending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	// Insert rows with explicit timestamps, oldest neither first nor
	// last, so insertion order cannot mask a missing ORDER BY.
	seed := func(id uint, createdAt int64) {
		require.NoError(t, db.Create(&models.TicketModel{
			ID:          id,
			RequesterID: 1,
			AssetID:     1,
			Description: "Broken equipment reported",
			Status:      "OPEN",
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}).Error)
	}
	seed(1, 2000)
	seed(2, 1000)
	seed(3, 3000)

	all, err := repo.List(ctx, ticket.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, uint(3), all[0].ID())
	assert.Equal(t, uint(1), all[1].ID())
	assert.Equal(t, uint(2), all[2].ID())
}

func TestTicketRepository_TopAssetTypes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	assetID := uint(0)
	seedAsset := func(assetType string) uint {
		assetID++
		require.NoError(t, db.Create(&models.AssetModel{
			ID:     assetID,
			Type:   assetType,
			Serial: fmt.Sprintf("SN-%03d", assetID),
		}).Error)
		return assetID
	}

	laptop := seedAsset("Laptop")
	printer := seedAsset("Printer")
	monitor := seedAsset("Monitor")

	seedTicketFor := func(assetID uint, n int) {
		for i := 0; i < n; i++ {
			tk := createTestTicket(t, 1, assetID, "Broken equipment reported", "")
			require.NoError(t, repo.Save(ctx, tk))
		}
	}
	seedTicketFor(laptop, 3)
	seedTicketFor(printer, 2)
	seedTicketFor(monitor, 1)

	t.Run("ranked by ticket count descending", func(t *testing.T) {
		top, err := repo.TopAssetTypes(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 3)

		assert.Equal(t, ticket.AssetTypeCount{EquipmentType: "Laptop", Count: 3}, top[0])
		assert.Equal(t, ticket.AssetTypeCount{EquipmentType: "Printer", Count: 2}, top[1])
		assert.Equal(t, ticket.AssetTypeCount{EquipmentType: "Monitor", Count: 1}, top[2])
	})

	t.Run("limit caps the ranking", func(t *testing.T) {
		top, err := repo.TopAssetTypes(ctx, 2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "Laptop", top[0].EquipmentType)
		assert.Equal(t, "Printer", top[1].EquipmentType)
	})
}

func TestTicketRepository_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seed := func(status vo.Status, technician, damageType string) {
		tk := createTestTicket(t, 1, 1, "Broken equipment reported", damageType)
		require.NoError(t, repo.Save(ctx, tk))
		if status != vo.StatusOpen {
			require.NoError(t, tk.ChangeStatus(status))
			require.NoError(t, repo.Update(ctx, tk))
		}
		if technician != "" {
			require.NoError(t, repo.UpdateTechnician(ctx, tk.ID(), technician))
		}
	}

	seed(vo.StatusOpen, "", "Screen")
	seed(vo.StatusOpen, "", "Screen")
	seed(vo.StatusInProgress, "Carlos Gomez", "Keyboard")
	seed(vo.StatusClosed, "Carlos Gomez", "Screen")
	seed(vo.StatusClosed, "Ana Ruiz", "")

	t.Run("count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts["OPEN"])
		assert.Equal(t, int64(1), counts["IN_PROGRESS"])
		assert.Equal(t, int64(2), counts["CLOSED"])
	})

	t.Run("closed count by technician", func(t *testing.T) {
		perf, err := repo.ClosedCountByTechnician(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), perf["Carlos Gomez"])
		assert.Equal(t, int64(1), perf["Ana Ruiz"])
	})

	t.Run("count by damage type skips blank", func(t *testing.T) {
		failures, err := repo.CountByDamageType(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), failures["Screen"])
		assert.Equal(t, int64(1), failures["Keyboard"])
		assert.NotContains(t, failures, "")
	})
}

func TestTicketRepository_UpdateDocumentPath(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, 1, 1, "Display flickers on boot", "Screen")
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, repo.UpdateDocumentPath(ctx, tk.ID(), "/documents/ticket_1.pdf"))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "/documents/ticket_1.pdf", found.DocumentPath())
}
