package main

import (
	"log"

	"inventory_backend/internal/database"
	"inventory_backend/internal/router"
	"inventory_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	// Storage configuration: a connection string and the database name,
	// nothing else.
	connStr := utils.Getenv("DATABASE_URL", "host=localhost port=5432 user=inventory password=inventory sslmode=disable")
	dbName := utils.Getenv("DB_NAME", "inventory_db")

	db, err := database.Connect(connStr, dbName)
	if err != nil {
		utils.LogError(err, "Failed to initialize database")
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	utils.LogInfo("Database initialized", map[string]interface{}{"db_name": dbName})

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// Cross-origin requests are permitted from any origin.
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(config))

	router.Setup(engine, db)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
