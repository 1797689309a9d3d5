package usecases

import (
	"context"
	"fmt"
	"path/filepath"

	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type TicketDocument struct {
	Path        string
	Filename    string
	ContentType string
}

type GetTicketDocumentUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  *TicketPublisher
	logger     logger.Interface
}

func NewGetTicketDocumentUseCase(
	ticketRepo ticket.TicketRepository,
	publisher *TicketPublisher,
	log logger.Interface,
) *GetTicketDocumentUseCase {
	return &GetTicketDocumentUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     log,
	}
}

// Execute regenerates the artifact on every call so the download always
// reflects the current ticket state.
func (uc *GetTicketDocumentUseCase) Execute(ctx context.Context, ticketID uint) (*TicketDocument, error) {
	if ticketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	path, err := uc.publisher.RenderDocument(ctx, t, nil)
	if err != nil {
		uc.logger.Errorw("failed to render ticket document",
			"ticket_id", ticketID, "error", err)
		return nil, apperrors.NewInternalError("failed to generate ticket document")
	}

	contentType := "text/plain"
	if filepath.Ext(path) == ".pdf" {
		contentType = "application/pdf"
	}

	return &TicketDocument{
		Path:        path,
		Filename:    fmt.Sprintf("ticket_%d%s", ticketID, filepath.Ext(path)),
		ContentType: contentType,
	}, nil
}
