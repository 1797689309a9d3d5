package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	apperrors "helpdesk/internal/shared/errors"
)

const (
	StatusFilterPending   = "pending"
	StatusFilterCompleted = "completed"
)

type ListTicketsQuery struct {
	// StatusFilter is "pending", "completed", or empty for all.
	StatusFilter string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error) {
	filter := ticket.Filter{}

	switch query.StatusFilter {
	case "":
	case StatusFilterPending:
		filter.Statuses = vo.PendingStatuses()
	case StatusFilterCompleted:
		filter.Statuses = vo.CompletedStatuses()
	default:
		return nil, apperrors.NewValidationError("invalid status filter", "expected pending or completed")
	}

	return uc.ticketRepo.List(ctx, filter)
}
