package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
)

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if ticketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required")
	}
	return uc.ticketRepo.FindByID(ctx, ticketID)
}
