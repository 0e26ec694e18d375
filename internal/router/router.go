package router

import (
	"database/sql"

	"inventory_backend/internal/handlers"
	"inventory_backend/internal/repositories"
	"inventory_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. Every route group hangs
// off the /api prefix; there is no authentication layer.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	residentRepo := repositories.NewResidentRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	statusRepo := repositories.NewStatusCheckRepository(db)

	// Initialize Services
	residentService := services.NewResidentService(residentRepo, itemRepo, db)
	itemService := services.NewItemService(itemRepo, db)
	statusService := services.NewStatusCheckService(statusRepo, db)

	// Initialize Handlers
	residentHandler := handlers.NewResidentHandler(residentService)
	itemHandler := handlers.NewItemHandler(itemService)
	statusHandler := handlers.NewStatusCheckHandler(statusService)

	api := engine.Group("/api")
	{
		SetupStatusRoutes(api, statusHandler)
		SetupResidentRoutes(api, residentHandler)
		SetupItemRoutes(api, itemHandler)
	}
}
