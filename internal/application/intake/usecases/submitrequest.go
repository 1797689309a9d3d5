// Package usecases implements the public intake flow: anonymous
// hardware failure reports that become regular tickets.
package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	"helpdesk/internal/shared/constants"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

var validate = validator.New()

type SubmitRequestCommand struct {
	PersonName    string
	PersonID      string
	EquipmentType string
	DamageType    string
	Description   string
	Email         string
	Phone         string
}

type SubmitRequestResult struct {
	TicketID uint
}

type SubmitRequestUseCase struct {
	requesterRepo requester.RequesterRepository
	assetRepo     asset.AssetRepository
	createTicket  *ticketusecases.CreateTicketUseCase
	logger        logger.Interface

	// newSerial is swappable for deterministic tests.
	newSerial func() string
}

func NewSubmitRequestUseCase(
	requesterRepo requester.RequesterRepository,
	assetRepo asset.AssetRepository,
	createTicket *ticketusecases.CreateTicketUseCase,
	log logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requesterRepo: requesterRepo,
		assetRepo:     assetRepo,
		createTicket:  createTicket,
		logger:        log,
		newSerial:     id.NewIntakeSerial,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	cmd = normalize(cmd)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email := cmd.Email
	if email == "" {
		// Sentinel address marks the ticket as notification-free.
		email = constants.SentinelNoReply
	}

	req, err := requester.NewRequester(cmd.PersonName, cmd.PersonID, email, cmd.Phone)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.requesterRepo.Save(ctx, req); err != nil {
		uc.logger.Errorw("failed to save intake requester", "error", err)
		return nil, fmt.Errorf("failed to save requester: %w", err)
	}

	// Equipment reported through the public form is not matched against
	// inventory; each submission gets a stub with a synthesized serial.
	stub, err := asset.NewAsset(cmd.EquipmentType, uc.newSerial(), "", "")
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.assetRepo.Save(ctx, stub); err != nil {
		uc.logger.Errorw("failed to save intake asset", "error", err)
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}

	result, err := uc.createTicket.Execute(ctx, ticketusecases.CreateTicketCommand{
		RequesterID: req.ID(),
		AssetID:     stub.ID(),
		Description: cmd.Description,
		DamageType:  cmd.DamageType,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("public request submitted",
		"ticket_id", result.TicketID,
		"equipment_type", cmd.EquipmentType)

	return &SubmitRequestResult{TicketID: result.TicketID}, nil
}

func normalize(cmd SubmitRequestCommand) SubmitRequestCommand {
	cmd.PersonName = strings.TrimSpace(cmd.PersonName)
	cmd.PersonID = strings.TrimSpace(cmd.PersonID)
	cmd.EquipmentType = strings.TrimSpace(cmd.EquipmentType)
	cmd.DamageType = strings.TrimSpace(cmd.DamageType)
	cmd.Description = strings.TrimSpace(cmd.Description)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	return cmd
}

// validateCommand collects every field problem into one error so the
// form can show them all at once.
func (uc *SubmitRequestUseCase) validateCommand(cmd SubmitRequestCommand) error {
	fields := make(map[string]string)

	checkRequired(fields, "personName", cmd.PersonName, 100)
	checkRequired(fields, "personId", cmd.PersonID, 50)
	checkRequired(fields, "equipmentType", cmd.EquipmentType, 50)
	checkRequired(fields, "damageType", cmd.DamageType, 50)
	if cmd.Description == "" {
		fields["description"] = "this field is required"
	}

	if cmd.Email != "" {
		if err := validate.Var(cmd.Email, "email"); err != nil {
			fields["email"] = "must be a valid email address"
		}
	}
	if len(cmd.Phone) > 20 {
		fields["phone"] = "must be at most 20 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}

func checkRequired(fields map[string]string, name, value string, maxLen int) {
	if value == "" {
		fields[name] = "this field is required"
		return
	}
	if len(value) > maxLen {
		fields[name] = fmt.Sprintf("must be at most %d characters", maxLen)
	}
}
