package main

import (
	"log"
	"os"

	"github.com/Emeenent14/omniverse/config"
	_ "github.com/Emeenent14/omniverse/docs"
	"github.com/Emeenent14/omniverse/middleware"
	"github.com/Emeenent14/omniverse/routes"
	"github.com/gin-gonic/gin"
)

// @title Omniverse Marketplace API
// @version 1.0
// @description REST backend for the Omniverse marketplace: accounts, product catalog and shopping cart.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
