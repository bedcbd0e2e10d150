package routes

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/vortexia/barbershop-manager/internal/activity"
	"github.com/vortexia/barbershop-manager/internal/config"
	"github.com/vortexia/barbershop-manager/internal/handlers"
	"github.com/vortexia/barbershop-manager/internal/infra/imagestore"
	infraRepo "github.com/vortexia/barbershop-manager/internal/infra/repository"
	"github.com/vortexia/barbershop-manager/internal/logger"
	"github.com/vortexia/barbershop-manager/internal/services"
	"github.com/vortexia/barbershop-manager/internal/storage"
	ucAppointment "github.com/vortexia/barbershop-manager/internal/usecase/appointment"
	ucCalculator "github.com/vortexia/barbershop-manager/internal/usecase/calculator"
)

func RegisterRoutes(r *gin.Engine, store storage.Store, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewStoreRepository(store)

	activityLogger := activity.New(store)
	activityDispatcher := activity.NewDispatcher(activityLogger)

	uploader := imagestore.New(cfg)

	// Um único lock para todas as mutações: reproduz o modelo
	// single-threaded do storage original num servidor concorrente
	storeMu := &sync.RWMutex{}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		repo,
		activityDispatcher,
		storeMu,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		repo,
		activityDispatcher,
		storeMu,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		repo,
		activityDispatcher,
		storeMu,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		repo,
		completeAppointmentUC,
		cancelAppointmentUC,
		storeMu,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(repo, storeMu)
	listAppointmentsUC := ucAppointment.NewListAppointments(repo, storeMu)

	// ======================================================
	// 🧠 USE CASES — CALCULATOR
	// ======================================================
	computeUC := ucCalculator.NewCompute(repo, activityDispatcher, storeMu)
	registerClientUC := ucCalculator.NewRegisterClient(
		computeUC,
		repo,
		activityDispatcher,
		storeMu,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(repo, activityDispatcher, storeMu)
	transactionHandler := handlers.NewTransactionHandler(repo, activityDispatcher, storeMu)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	inventoryHandler := handlers.NewInventoryHandler(repo, uploader, activityDispatcher, storeMu)
	settingsHandler := handlers.NewSettingsHandler(repo, storeMu)
	activityHandler := handlers.NewActivityHandler(activityLogger)
	calculatorHandler := handlers.NewCalculatorHandler(
		computeUC,
		registerClientUC,
		repo,
		activityDispatcher,
		storeMu,
	)
	dashboardHandler := handlers.NewDashboardHandler(repo, storeMu)

	// ======================================================
	// ⏰ AGENDA DIGEST
	// ======================================================
	if cfg.DigestCron != "" {
		digest := services.NewAgendaDigest(repo, activityDispatcher, cfg.DigestCron)
		if err := digest.Start(); err != nil {
			logger.Log.Error().Err(err).Msg("failed to start agenda digest")
		}
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// TRANSACTIONS
		// ------------------------------
		api.GET("/transactions", transactionHandler.List)
		api.POST("/transactions", transactionHandler.Create)
		api.DELETE("/transactions/:id", transactionHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// INVENTORY
		// ------------------------------
		api.GET("/inventory", inventoryHandler.List)
		api.POST("/inventory", inventoryHandler.Create)
		api.PATCH("/inventory/:id", inventoryHandler.Update)
		api.DELETE("/inventory/:id", inventoryHandler.Delete)
		api.POST("/inventory/:id/image", inventoryHandler.UploadImage)

		// ------------------------------
		// SETTINGS
		// ------------------------------
		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Update)

		// ------------------------------
		// ACTIVITIES
		// ------------------------------
		api.GET("/activities", activityHandler.List)

		// ------------------------------
		// CALCULATOR
		// ------------------------------
		api.POST("/calculator", calculatorHandler.Compute)
		api.POST("/calculator/client", calculatorHandler.ComputeAndRegister)
		api.GET("/calculations", calculatorHandler.List)
		api.PATCH("/calculations/:id", calculatorHandler.Rename)
		api.DELETE("/calculations/:id", calculatorHandler.Delete)
		api.GET("/calculations/export", calculatorHandler.ExportCSV)
		api.GET("/calculations/:id/document", calculatorHandler.Document)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Get)
	}
}
