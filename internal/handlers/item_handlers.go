package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inventory_backend/internal/models"
	"inventory_backend/internal/services"
	"inventory_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ItemHandler holds the item service.
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(is services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: is}
}

// GetItems handles fetching items, optionally filtered by owning resident.
func (h *ItemHandler) GetItems(c *gin.Context) {
	pResidentID := utils.NewNullString(c.Query("residentId"))

	items, err := h.itemService.GetItems(pResidentID)
	if err != nil {
		utils.LogError(err, "GetItems: Error from itemService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch items.", "Internal error"))
		return
	}

	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem handles the creation of a new item.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.itemService.CreateItem(req)
	if err != nil {
		utils.LogError(err, "CreateItem: Error from itemService.CreateItem")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create item.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles a partial item update; only fields present in the body
// are applied.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID := c.Param("id")

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateItem: Failed to bind JSON for ID "+itemID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.itemService.UpdateItem(itemID, req)
	if err != nil {
		utils.LogError(err, "UpdateItem: Error from itemService.UpdateItem for ID "+itemID)
		h.respondItemError(c, err, "Failed to update item.")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles removing a single item.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID := c.Param("id")

	if err := h.itemService.DeleteItem(itemID); err != nil {
		utils.LogError(err, "DeleteItem: Error from itemService.DeleteItem for ID "+itemID)
		h.respondItemError(c, err, "Failed to delete item.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// RecordPurchase handles adding stock with a purchase history entry.
func (h *ItemHandler) RecordPurchase(c *gin.Context) {
	itemID := c.Param("id")

	var req services.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordPurchase: Failed to bind JSON for ID "+itemID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.itemService.RecordPurchase(itemID, req)
	if err != nil {
		utils.LogError(err, "RecordPurchase: Error from itemService.RecordPurchase for ID "+itemID)
		h.respondItemError(c, err, "Failed to record purchase.")
		return
	}
	c.JSON(http.StatusOK, item)
}

// RecordUsage handles consuming stock with a usage history entry. This is the
// one endpoint that rejects when stock is insufficient.
func (h *ItemHandler) RecordUsage(c *gin.Context) {
	itemID := c.Param("id")

	var req services.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordUsage: Failed to bind JSON for ID "+itemID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.itemService.RecordUsage(itemID, req)
	if err != nil {
		utils.LogError(err, "RecordUsage: Error from itemService.RecordUsage for ID "+itemID)
		if errors.Is(err, services.ErrInsufficientStock) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Not enough quantity in stock", err.Error()))
			return
		}
		h.respondItemError(c, err, "Failed to record usage.")
		return
	}
	c.JSON(http.StatusOK, item)
}

// AdjustQuantity handles a direct stock correction. The delta comes in as a
// query parameter and may be negative; the result clamps at zero instead of
// being rejected.
func (h *ItemHandler) AdjustQuantity(c *gin.Context) {
	itemID := c.Param("id")

	delta, err := strconv.Atoi(c.Query("delta"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid delta value.", err.Error()))
		return
	}

	item, err := h.itemService.AdjustQuantity(itemID, delta)
	if err != nil {
		utils.LogError(err, "AdjustQuantity: Error from itemService.AdjustQuantity for ID "+itemID)
		h.respondItemError(c, err, "Failed to adjust quantity.")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) respondItemError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrItemNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Item not found", err.Error()))
		return
	}
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
}
