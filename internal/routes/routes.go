package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VivientaServicios01/visitas-scheduler/internal/audit"
	"github.com/VivientaServicios01/visitas-scheduler/internal/cache"
	"github.com/VivientaServicios01/visitas-scheduler/internal/handlers"
	infraRepo "github.com/VivientaServicios01/visitas-scheduler/internal/infra/repository"
	"github.com/VivientaServicios01/visitas-scheduler/internal/middleware"
	ucBooking "github.com/VivientaServicios01/visitas-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c cache.Cache, log *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	slotStore := infraRepo.NewSlotGormStore(db)
	appointmentStore := infraRepo.NewAppointmentGormStore(db)
	clientStore := infraRepo.NewClientGormStore(db)
	propertyResolver := infraRepo.NewPropertyGormResolver(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — RESERVAS
	// ======================================================
	resolver := ucBooking.NewResolveSlot(slotStore, log)
	verifier := ucBooking.NewVerifyCapacity(appointmentStore, log)
	reconciler := ucBooking.NewReconcileSlot(slotStore, appointmentStore, c, log)

	createBookingUC := ucBooking.NewCreateBooking(
		resolver,
		verifier,
		reconciler,
		appointmentStore,
		clientStore,
		propertyResolver,
		auditDispatcher,
		log,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		resolver,
		verifier,
		reconciler,
		appointmentStore,
		clientStore,
		propertyResolver,
		auditDispatcher,
		log,
	)

	transitionUC := ucBooking.NewChangeBookingStatus(
		appointmentStore,
		reconciler,
		auditDispatcher,
		log,
	)

	getBookingUC := ucBooking.NewGetBooking(appointmentStore)
	listBookingsUC := ucBooking.NewListBookingsByDate(appointmentStore)
	availabilityUC := ucBooking.NewListAvailability(slotStore, c, log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		transitionUC,
		getBookingUC,
		listBookingsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (formulario de visitas)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", availabilityHandler.List)
			publicAPI.POST("/bookings", bookingHandler.Create)
		}

		// ------------------------------
		// CITAS (panel de la agencia)
		// ------------------------------
		api.GET("/bookings", bookingHandler.ListByDate)
		api.GET("/bookings/:folio", bookingHandler.Get)
		api.PUT("/bookings/:folio", bookingHandler.Update)
		api.PATCH("/bookings/:folio/confirm", bookingHandler.Confirm)
		api.PATCH("/bookings/:folio/cancel", bookingHandler.Cancel)
		api.PATCH("/bookings/:folio/complete", bookingHandler.Complete)
		api.PATCH("/bookings/:folio/no-show", bookingHandler.NoShow)
	}
}
