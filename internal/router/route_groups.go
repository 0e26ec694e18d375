package router

import (
	"inventory_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupResidentRoutes sets up the resident routes.
func SetupResidentRoutes(apiGroup *gin.RouterGroup, residentHandler *handlers.ResidentHandler) {
	residentRoutes := apiGroup.Group("/residents")
	{
		residentRoutes.GET("", residentHandler.GetResidents)
		residentRoutes.POST("", residentHandler.CreateResident)
		residentRoutes.PUT("/:id", residentHandler.UpdateResident)
		residentRoutes.DELETE("/:id", residentHandler.DeleteResident)
	}
}

// SetupItemRoutes sets up the item routes, including the stock-event endpoints.
func SetupItemRoutes(apiGroup *gin.RouterGroup, itemHandler *handlers.ItemHandler) {
	itemRoutes := apiGroup.Group("/items")
	{
		itemRoutes.GET("", itemHandler.GetItems)
		itemRoutes.POST("", itemHandler.CreateItem)
		itemRoutes.PUT("/:id", itemHandler.UpdateItem)
		itemRoutes.DELETE("/:id", itemHandler.DeleteItem)

		itemRoutes.POST("/:id/purchase", itemHandler.RecordPurchase)
		itemRoutes.POST("/:id/usage", itemHandler.RecordUsage)
		itemRoutes.POST("/:id/adjust-quantity", itemHandler.AdjustQuantity)
	}
}

// SetupStatusRoutes sets up the legacy banner and status-check routes.
func SetupStatusRoutes(apiGroup *gin.RouterGroup, statusHandler *handlers.StatusCheckHandler) {
	apiGroup.GET("/", statusHandler.Root)
	apiGroup.GET("/status", statusHandler.GetStatusChecks)
	apiGroup.POST("/status", statusHandler.CreateStatusCheck)
}
