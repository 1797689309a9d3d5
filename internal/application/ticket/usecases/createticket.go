package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	RequesterID uint
	AssetID     uint
	Description string
	DamageType  string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	requesterRepo requester.RequesterRepository
	assetRepo     asset.AssetRepository
	publisher     *TicketPublisher
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	requesterRepo requester.RequesterRepository,
	assetRepo asset.AssetRepository,
	publisher *TicketPublisher,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		requesterRepo: requesterRepo,
		assetRepo:     assetRepo,
		publisher:     publisher,
		logger:        log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.requesterRepo.Exists(ctx, cmd.RequesterID)
	if err != nil {
		uc.logger.Errorw("failed to check requester existence", "error", err)
		return nil, fmt.Errorf("failed to check requester existence: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("requester not found")
	}

	exists, err = uc.assetRepo.Exists(ctx, cmd.AssetID)
	if err != nil {
		uc.logger.Errorw("failed to check asset existence", "error", err)
		return nil, fmt.Errorf("failed to check asset existence: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("asset not found")
	}

	newTicket, err := ticket.NewTicket(cmd.RequesterID, cmd.AssetID, cmd.Description, cmd.DamageType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"requester_id", cmd.RequesterID,
		"asset_id", cmd.AssetID)

	// Post-commit side effects; failures are logged inside and never
	// surface to the caller.
	uc.publisher.Publish(ctx, newTicket,
		fmt.Sprintf("Support ticket #%d received", newTicket.ID()),
		"Your support request has been registered.")

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.RequesterID == 0 {
		return apperrors.NewValidationError("requester ID is required")
	}
	if cmd.AssetID == 0 {
		return apperrors.NewValidationError("asset ID is required")
	}
	if cmd.Description == "" {
		return apperrors.NewValidationError("description is required")
	}
	return nil
}
