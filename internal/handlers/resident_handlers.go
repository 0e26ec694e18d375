package handlers

import (
	"errors"
	"net/http"

	"inventory_backend/internal/models"
	"inventory_backend/internal/services"
	"inventory_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ResidentHandler holds the resident service.
type ResidentHandler struct {
	residentService services.ResidentService
}

// NewResidentHandler creates a new ResidentHandler.
func NewResidentHandler(rs services.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: rs}
}

// GetResidents handles fetching all residents.
func (h *ResidentHandler) GetResidents(c *gin.Context) {
	residents, err := h.residentService.GetResidents()
	if err != nil {
		utils.LogError(err, "GetResidents: Error from residentService.GetResidents")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch residents.", "Internal error"))
		return
	}

	if residents == nil {
		residents = []models.Resident{}
	}
	c.JSON(http.StatusOK, residents)
}

// CreateResident handles the creation of a new resident.
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var req services.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateResident: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	resident, err := h.residentService.CreateResident(req)
	if err != nil {
		utils.LogError(err, "CreateResident: Error from residentService.CreateResident")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create resident.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, resident)
}

// UpdateResident handles replacing a resident's name.
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	residentID := c.Param("id")

	var req services.UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateResident: Failed to bind JSON for ID "+residentID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	resident, err := h.residentService.UpdateResident(residentID, req)
	if err != nil {
		utils.LogError(err, "UpdateResident: Error from residentService.UpdateResident for ID "+residentID)
		if errors.Is(err, services.ErrResidentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Resident not found", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update resident.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, resident)
}

// DeleteResident handles removing a resident and, with it, every item the
// resident owned.
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	residentID := c.Param("id")

	if err := h.residentService.DeleteResident(residentID); err != nil {
		utils.LogError(err, "DeleteResident: Error from residentService.DeleteResident for ID "+residentID)
		if errors.Is(err, services.ErrResidentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Resident not found", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete resident.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resident and associated items deleted successfully"})
}
