package ticket

import (
	"time"

	"helpdesk/internal/application/ticket/usecases"
	domain "helpdesk/internal/domain/ticket"
)

type CreateTicketRequest struct {
	RequesterID uint   `json:"requesterId" binding:"required"`
	AssetID     uint   `json:"assetId" binding:"required"`
	Description string `json:"description" binding:"required"`
	DamageType  string `json:"damageType"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		RequesterID: r.RequesterID,
		AssetID:     r.AssetID,
		Description: r.Description,
		DamageType:  r.DamageType,
	}
}

type UpdateTicketRequest struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
	DamageType  *string `json:"damageType"`
	WorkLog     *string `json:"workLog"`
	Technician  *string `json:"technician"`
}

type TicketResponse struct {
	ID          uint      `json:"id"`
	RequesterID uint      `json:"requesterId"`
	AssetID     uint      `json:"assetId"`
	Description string    `json:"description"`
	DamageType  string    `json:"damageType"`
	Status      string    `json:"status"`
	Technician  string    `json:"technician"`
	WorkLog     string    `json:"workLog"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID(),
		RequesterID: t.RequesterID(),
		AssetID:     t.AssetID(),
		Description: t.Description(),
		DamageType:  t.DamageType(),
		Status:      t.Status().String(),
		Technician:  t.Technician(),
		WorkLog:     t.WorkLog(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func toTicketResponses(tickets []*domain.Ticket) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		responses[i] = toTicketResponse(t)
	}
	return responses
}
