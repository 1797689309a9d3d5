package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Status      *string
	Description *string
	DamageType  *string
	WorkLog     *string
	Technician  *string

	// ActorName and ActorUsername come from the authenticated
	// principal, when there is one. They feed attribution only.
	ActorName     string
	ActorUsername string
}

type UpdateTicketResult struct {
	TicketID   uint
	Status     string
	Technician string
	UpdatedAt  time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  *TicketPublisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	publisher *TicketPublisher,
	log logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.DamageType != nil {
		t.UpdateDamageType(*cmd.DamageType)
	}
	if cmd.WorkLog != nil {
		t.UpdateWorkLog(*cmd.WorkLog)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.applyAttribution(ctx, t, cmd)

	// Every save that leaves the ticket CLOSED republishes the artifact
	// and notifies the requester, including repeated saves of an
	// already-closed ticket.
	if t.Status().IsClosed() {
		uc.publisher.Publish(ctx, t,
			fmt.Sprintf("Support ticket #%d closed", t.ID()),
			"Your support request has been resolved and closed.")
	}

	return &UpdateTicketResult{
		TicketID:   t.ID(),
		Status:     t.Status().String(),
		Technician: t.Technician(),
		UpdatedAt:  t.UpdatedAt(),
	}, nil
}

// applyAttribution resolves who worked the ticket and persists it as a
// separate idempotent write. Precedence: explicit technician field,
// then the actor's name, then their username. No value leaves the
// prior attribution untouched.
func (uc *UpdateTicketUseCase) applyAttribution(ctx context.Context, t *ticket.Ticket, cmd UpdateTicketCommand) {
	name := ""
	if cmd.Technician != nil {
		name = strings.TrimSpace(*cmd.Technician)
	}
	if name == "" {
		name = strings.TrimSpace(cmd.ActorName)
	}
	if name == "" {
		name = strings.TrimSpace(cmd.ActorUsername)
	}
	if name == "" || name == t.Technician() {
		return
	}

	t.AttributeTo(name)

	if err := uc.ticketRepo.UpdateTechnician(ctx, t.ID(), name); err != nil {
		uc.logger.Warnw("failed to persist ticket attribution",
			"ticket_id", t.ID(), "technician", name, "error", err)
	}
}
