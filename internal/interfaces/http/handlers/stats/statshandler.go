package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/stats/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/utils"
)

type equipmentFrequencyEntry struct {
	EquipmentType string `json:"equipmentType"`
	Count         int64  `json:"count"`
}

// StatsResponse keys are part of the dashboard contract; the redundant
// totalTickets/completedTickets pair is kept for the charts that
// consume them.
type StatsResponse struct {
	Pending               int64                     `json:"pending"`
	InProcess             int64                     `json:"in_process"`
	Closed                int64                     `json:"closed"`
	Total                 int64                     `json:"total"`
	Technicians           []string                  `json:"technicians"`
	TechnicianPerformance map[string]int64          `json:"technicianPerformance"`
	FailureTypes          map[string]int64          `json:"failureTypes"`
	EquipmentFrequency    []equipmentFrequencyEntry `json:"equipmentFrequency"`
	TotalTickets          int64                     `json:"totalTickets"`
	CompletedTickets      int64                     `json:"completedTickets"`
}

type StatsHandler struct {
	getStatsUC *usecases.GetStatsUseCase
}

func NewStatsHandler(getStatsUC *usecases.GetStatsUseCase) *StatsHandler {
	return &StatsHandler{getStatsUC: getStatsUC}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStatsResponse(stats))
}

func toStatsResponse(stats *usecases.Stats) StatsResponse {
	resp := StatsResponse{
		Pending:               stats.Pending,
		InProcess:             stats.InProcess,
		Closed:                stats.Closed,
		Total:                 stats.Total,
		Technicians:           stats.Technicians,
		TechnicianPerformance: stats.TechnicianPerformance,
		FailureTypes:          stats.FailureTypes,
		EquipmentFrequency:    toEquipmentFrequency(stats.EquipmentFrequency),
		TotalTickets:          stats.Total,
		CompletedTickets:      stats.Closed,
	}

	// JSON consumers expect arrays and objects, never null.
	if resp.Technicians == nil {
		resp.Technicians = []string{}
	}
	if resp.TechnicianPerformance == nil {
		resp.TechnicianPerformance = map[string]int64{}
	}
	if resp.FailureTypes == nil {
		resp.FailureTypes = map[string]int64{}
	}

	return resp
}

func toEquipmentFrequency(entries []ticket.AssetTypeCount) []equipmentFrequencyEntry {
	result := make([]equipmentFrequencyEntry, len(entries))
	for i, e := range entries {
		result[i] = equipmentFrequencyEntry{EquipmentType: e.EquipmentType, Count: e.Count}
	}
	return result
}
