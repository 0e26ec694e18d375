package handlers

import (
	"net/http"

	"inventory_backend/internal/models"
	"inventory_backend/internal/services"
	"inventory_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StatusCheckHandler covers the legacy root banner and status-check endpoints.
type StatusCheckHandler struct {
	statusService services.StatusCheckService
}

// NewStatusCheckHandler creates a new StatusCheckHandler.
func NewStatusCheckHandler(ss services.StatusCheckService) *StatusCheckHandler {
	return &StatusCheckHandler{statusService: ss}
}

// Root answers the legacy API banner.
func (h *StatusCheckHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Inventory Management System API"})
}

// CreateStatusCheck records a client ping.
func (h *StatusCheckHandler) CreateStatusCheck(c *gin.Context) {
	var req services.CreateStatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStatusCheck: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	check, err := h.statusService.CreateStatusCheck(req)
	if err != nil {
		utils.LogError(err, "CreateStatusCheck: Error from statusService.CreateStatusCheck")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create status check.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, check)
}

// GetStatusChecks lists recorded client pings.
func (h *StatusCheckHandler) GetStatusChecks(c *gin.Context) {
	checks, err := h.statusService.GetStatusChecks()
	if err != nil {
		utils.LogError(err, "GetStatusChecks: Error from statusService.GetStatusChecks")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch status checks.", "Internal error"))
		return
	}

	if checks == nil {
		checks = []models.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
