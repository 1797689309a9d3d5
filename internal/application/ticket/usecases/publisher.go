package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

// TicketPublisher renders the ticket artifact and delivers the
// notification after a lifecycle event. It runs after the storage
// commit; every failure here is logged and swallowed so the committed
// mutation is never rolled back or reported as failed.
type TicketPublisher struct {
	ticketRepo    ticket.TicketRepository
	requesterRepo requester.RequesterRepository
	assetRepo     asset.AssetRepository
	renderer      DocumentRenderer
	dispatcher    NotificationDispatcher
	opsAddress    string
	logger        logger.Interface
}

func NewTicketPublisher(
	ticketRepo ticket.TicketRepository,
	requesterRepo requester.RequesterRepository,
	assetRepo asset.AssetRepository,
	renderer DocumentRenderer,
	dispatcher NotificationDispatcher,
	opsAddress string,
	log logger.Interface,
) *TicketPublisher {
	return &TicketPublisher{
		ticketRepo:    ticketRepo,
		requesterRepo: requesterRepo,
		assetRepo:     assetRepo,
		renderer:      renderer,
		dispatcher:    dispatcher,
		opsAddress:    opsAddress,
		logger:        log,
	}
}

// Publish renders the artifact, records its path, and sends the
// notification. The artifact is rendered even when the notification is
// suppressed by the sentinel address.
func (p *TicketPublisher) Publish(ctx context.Context, t *ticket.Ticket, subject, intro string) {
	req, err := p.requesterRepo.FindByID(ctx, t.RequesterID())
	if err != nil {
		p.logger.Warnw("failed to load requester for notification",
			"ticket_id", t.ID(), "error", err)
		return
	}

	path, err := p.RenderDocument(ctx, t, req)
	if err != nil {
		p.logger.Warnw("failed to render ticket document",
			"ticket_id", t.ID(), "error", err)
	}

	if req.Email() == constants.SentinelNoReply {
		return
	}

	recipient := req.Email()
	if recipient == "" {
		recipient = p.opsAddress
	}
	if recipient == "" {
		p.logger.Warnw("no recipient available for notification",
			"ticket_id", t.ID())
		return
	}

	body := fmt.Sprintf("%s\n\nTicket #%d\nStatus: %s\nDescription: %s\n",
		intro, t.ID(), t.Status().String(), t.Description())

	if err := p.dispatcher.Send(subject, body, []string{recipient}, path); err != nil {
		p.logger.Warnw("failed to send ticket notification",
			"ticket_id", t.ID(), "error", err)
	}
}

// RenderDocument builds the snapshot, writes the artifact, and persists
// its path on the ticket row. A nil requester is loaded on demand.
func (p *TicketPublisher) RenderDocument(ctx context.Context, t *ticket.Ticket, req *requester.Requester) (string, error) {
	if req == nil {
		var err error
		req, err = p.requesterRepo.FindByID(ctx, t.RequesterID())
		if err != nil {
			return "", fmt.Errorf("failed to load requester: %w", err)
		}
	}

	a, err := p.assetRepo.FindByID(ctx, t.AssetID())
	if err != nil {
		return "", fmt.Errorf("failed to load asset: %w", err)
	}

	path, err := p.renderer.Render(dto.DocumentSnapshot{
		TicketID:      t.ID(),
		RequesterName: req.Name(),
		AssetType:     a.Type(),
		AssetSerial:   a.Serial(),
		Status:        t.Status().String(),
		Technician:    t.Technician(),
		DamageType:    t.DamageType(),
		Description:   t.Description(),
		WorkLog:       t.WorkLog(),
		CreatedAt:     t.CreatedAt(),
	})
	if err != nil {
		return "", err
	}

	if err := p.ticketRepo.UpdateDocumentPath(ctx, t.ID(), path); err != nil {
		p.logger.Warnw("failed to record document path",
			"ticket_id", t.ID(), "error", err)
	}

	return path, nil
}
