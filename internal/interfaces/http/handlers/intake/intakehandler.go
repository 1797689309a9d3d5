// Package intake exposes the public ticket submission form. Response
// shapes here are part of the external contract consumed by the
// standalone request page, so they bypass the standard envelope.
package intake

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/intake/usecases"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type SubmitRequestBody struct {
	PersonName    string `json:"personName"`
	PersonID      string `json:"personId"`
	EquipmentType string `json:"equipmentType"`
	DamageType    string `json:"damageType"`
	Description   string `json:"description"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

type IntakeHandler struct {
	submitRequestUC *usecases.SubmitRequestUseCase
	logger          logger.Interface
}

func NewIntakeHandler(submitRequestUC *usecases.SubmitRequestUseCase) *IntakeHandler {
	return &IntakeHandler{
		submitRequestUC: submitRequestUC,
		logger:          logger.NewLogger(),
	}
}

// SubmitRequest handles POST /solicitar-ticket
func (h *IntakeHandler) SubmitRequest(c *gin.Context) {
	var body SubmitRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("malformed intake submission", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	result, err := h.submitRequestUC.Execute(c.Request.Context(), usecases.SubmitRequestCommand{
		PersonName:    body.PersonName,
		PersonID:      body.PersonID,
		EquipmentType: body.EquipmentType,
		DamageType:    body.DamageType,
		Description:   body.Description,
		Email:         body.Email,
		Phone:         body.Phone,
	})
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil && len(appErr.Fields) > 0 {
			// The form expects a bare field -> message map.
			c.JSON(http.StatusBadRequest, appErr.Fields)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ticketId": result.TicketID})
}
