package catalog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/catalog"
	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

type RequesterRequest struct {
	Name           string `json:"name" binding:"required"`
	Identification string `json:"identification" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type RequesterResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Identification string    `json:"identification"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AssetRequest struct {
	Type   string `json:"type" binding:"required"`
	Serial string `json:"serial" binding:"required"`
	Brand  string `json:"brand"`
	Model  string `json:"model"`
}

type AssetResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Serial    string    `json:"serial"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
}

type CatalogHandler struct {
	service *catalog.Service
}

func NewCatalogHandler(service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateRequester handles POST /requesters
func (h *CatalogHandler) CreateRequester(c *gin.Context) {
	var req RequesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	created, err := h.service.CreateRequester(c.Request.Context(), catalog.RequesterInput{
		Name:           req.Name,
		Identification: req.Identification,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toRequesterResponse(created), "Requester created successfully")
}

// ListRequesters handles GET /requesters
func (h *CatalogHandler) ListRequesters(c *gin.Context) {
	requesters, err := h.service.ListRequesters(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]RequesterResponse, len(requesters))
	for i, r := range requesters {
		responses[i] = toRequesterResponse(r)
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GetRequester handles GET /requesters/:id
func (h *CatalogHandler) GetRequester(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	r, err := h.service.GetRequester(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRequesterResponse(r))
}

// UpdateRequester handles PUT /requesters/:id
func (h *CatalogHandler) UpdateRequester(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RequesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	updated, err := h.service.UpdateRequester(c.Request.Context(), id, catalog.RequesterInput{
		Name:           req.Name,
		Identification: req.Identification,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Requester updated successfully", toRequesterResponse(updated))
}

// DeleteRequester handles DELETE /requesters/:id
func (h *CatalogHandler) DeleteRequester(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteRequester(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreateAsset handles POST /assets
func (h *CatalogHandler) CreateAsset(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	created, err := h.service.CreateAsset(c.Request.Context(), catalog.AssetInput{
		Type:   req.Type,
		Serial: req.Serial,
		Brand:  req.Brand,
		Model:  req.Model,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAssetResponse(created), "Asset created successfully")
}

// ListAssets handles GET /assets
func (h *CatalogHandler) ListAssets(c *gin.Context) {
	assets, err := h.service.ListAssets(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]AssetResponse, len(assets))
	for i, a := range assets {
		responses[i] = toAssetResponse(a)
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GetAsset handles GET /assets/:id
func (h *CatalogHandler) GetAsset(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a, err := h.service.GetAsset(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAssetResponse(a))
}

// UpdateAsset handles PUT /assets/:id
func (h *CatalogHandler) UpdateAsset(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	updated, err := h.service.UpdateAsset(c.Request.Context(), id, catalog.AssetInput{
		Type:   req.Type,
		Serial: req.Serial,
		Brand:  req.Brand,
		Model:  req.Model,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset updated successfully", toAssetResponse(updated))
}

// DeleteAsset handles DELETE /assets/:id
func (h *CatalogHandler) DeleteAsset(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteAsset(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func toRequesterResponse(r *requester.Requester) RequesterResponse {
	return RequesterResponse{
		ID:             r.ID(),
		Name:           r.Name(),
		Identification: r.Identification(),
		Email:          r.Email(),
		Phone:          r.Phone(),
		CreatedAt:      r.CreatedAt(),
	}
}

func toAssetResponse(a *asset.Asset) AssetResponse {
	return AssetResponse{
		ID:        a.ID(),
		Type:      a.Type(),
		Serial:    a.Serial(),
		Brand:     a.Brand(),
		Model:     a.Model(),
		CreatedAt: a.CreatedAt(),
	}
}

func parseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ID")
	}
	return uint(id), nil
}
