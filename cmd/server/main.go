package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sipanuri-backend/internal/config"
	"sipanuri-backend/internal/database"
	"sipanuri-backend/internal/handler"
	"sipanuri-backend/internal/middleware"
	"sipanuri-backend/internal/repository"
	"sipanuri-backend/internal/service"
	"sipanuri-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection, schema and seed data
	db := database.Connect(cfg)
	database.Migrate(db)
	database.Seed(db)

	// 3. Initialize repositories
	roomRepo := repository.NewRoomRepo(db)
	historyRepo := repository.NewHistoryRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	consumableRepo := repository.NewConsumableRepo(db)
	assetRepo := repository.NewAssetRepo(db)
	loanRepo := repository.NewLoanRepo(db)

	// 4. Initialize services
	occupancyService := service.NewOccupancyService(roomRepo, historyRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	stockService := service.NewStockService(consumableRepo)
	assetService := service.NewAssetService(assetRepo, loanRepo)
	loanService := service.NewLoanService(loanRepo, assetRepo)
	reportService := service.NewReportService(roomRepo, historyRepo)
	exportService := service.NewExportService(
		roomRepo, historyRepo, doctorRepo, consumableRepo, consumableRepo, assetRepo, loanRepo)

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 7. Register handlers
	dashboardHandler := handler.NewDashboardHandler(
		occupancyService, reportService, doctorService, stockService, assetService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	bhpHandler := handler.NewBhpHandler(stockService)
	assetHandler := handler.NewAssetHandler(assetService)
	loanHandler := handler.NewLoanHandler(loanService)
	reportHandler := handler.NewReportHandler(reportService, exportService)

	// 8. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, "healthy", gin.H{
			"service": "sipanuri-backend",
		})
	})

	api := r.Group("/api/sipanuri")
	{
		api.GET("", dashboardHandler.Get)
		api.POST("", dashboardHandler.SetRoomState)

		api.GET("/dokter", doctorHandler.List)
		api.POST("/dokter", doctorHandler.Create)
		api.PUT("/dokter", doctorHandler.Update)
		api.DELETE("/dokter", doctorHandler.Delete)

		api.GET("/bhp", bhpHandler.Get)
		api.POST("/bhp", bhpHandler.Create)
		api.PUT("/bhp", bhpHandler.Update)
		api.DELETE("/bhp", bhpHandler.Delete)

		api.GET("/aset", assetHandler.Get)
		api.POST("/aset", assetHandler.Create)
		api.PUT("/aset", assetHandler.Update)
		api.DELETE("/aset", assetHandler.Delete)

		api.GET("/peminjaman", loanHandler.Get)
		api.POST("/peminjaman", loanHandler.Create)
		api.PUT("/peminjaman", loanHandler.Update)
		api.DELETE("/peminjaman", loanHandler.Delete)

		api.GET("/laporan", reportHandler.Monthly)
		api.GET("/export", reportHandler.Export)
	}

	// 9. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
