// Package usecases aggregates ticket metrics for the dashboard.
package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

const topAssetTypesLimit = 10

type Stats struct {
	Pending               int64
	InProcess             int64
	Closed                int64
	Total                 int64
	Technicians           []string
	TechnicianPerformance map[string]int64
	FailureTypes          map[string]int64
	EquipmentFrequency    []ticket.AssetTypeCount
}

type GetStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewGetStatsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	log logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*Stats, error) {
	statusCounts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	performance, err := uc.ticketRepo.ClosedCountByTechnician(ctx)
	if err != nil {
		uc.logger.Errorw("failed to aggregate technician performance", "error", err)
		return nil, fmt.Errorf("failed to aggregate technician performance: %w", err)
	}

	failureTypes, err := uc.ticketRepo.CountByDamageType(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count damage types", "error", err)
		return nil, fmt.Errorf("failed to count damage types: %w", err)
	}

	equipment, err := uc.ticketRepo.TopAssetTypes(ctx, topAssetTypesLimit)
	if err != nil {
		uc.logger.Errorw("failed to rank asset types", "error", err)
		return nil, fmt.Errorf("failed to rank asset types: %w", err)
	}

	staff, err := uc.userRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list staff users", "error", err)
		return nil, fmt.Errorf("failed to list staff users: %w", err)
	}

	technicians := make([]string, len(staff))
	for i, u := range staff {
		technicians[i] = u.DisplayName()
	}

	open := statusCounts[vo.StatusOpen.String()]
	inProgress := statusCounts[vo.StatusInProgress.String()]
	closed := statusCounts[vo.StatusClosed.String()]

	return &Stats{
		Pending:               open,
		InProcess:             inProgress,
		Closed:                closed,
		Total:                 open + inProgress + closed,
		Technicians:           technicians,
		TechnicianPerformance: performance,
		FailureTypes:          failureTypes,
		EquipmentFrequency:    equipment,
	}, nil
}
