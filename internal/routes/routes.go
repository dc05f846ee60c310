package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hvrSSB04/ssb-backend/internal/config"
	"github.com/hvrSSB04/ssb-backend/internal/handlers"
	infraRepo "github.com/hvrSSB04/ssb-backend/internal/infra/repository"
	"github.com/hvrSSB04/ssb-backend/internal/middleware"
	"github.com/hvrSSB04/ssb-backend/internal/notify"
	ucAppointment "github.com/hvrSSB04/ssb-backend/internal/usecase/appointment"
	ucBarber "github.com/hvrSSB04/ssb-backend/internal/usecase/barber"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	barberRepo := infraRepo.NewBarberMongoRepository(db)
	appointmentRepo := infraRepo.NewAppointmentMongoRepository(db)

	hub := notify.NewHub()
	dispatcher := notify.NewDispatcher(hub)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucBarber.NewRegister(barberRepo)
	loginUC := ucBarber.NewLogin(barberRepo)
	listBarbersUC := ucBarber.NewList(barberRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		barberRepo,
		dispatcher,
	)
	approveAppointmentUC := ucAppointment.NewApproveAppointment(
		appointmentRepo,
		dispatcher,
	)
	rejectAppointmentUC := ucAppointment.NewRejectAppointment(
		appointmentRepo,
		dispatcher,
	)
	listForBarberUC := ucAppointment.NewListForBarber(appointmentRepo)
	listForCustomerUC := ucAppointment.NewListForCustomer(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, cfg)
	barberHandler := handlers.NewBarberHandler(listBarbersUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		approveAppointmentUC,
		rejectAppointmentUC,
		listForBarberUC,
		listForCustomerUC,
		cfg,
	)

	wsHandler := handlers.NewWSHandler(hub, cfg)

	// ======================================================
	// ROUTES
	// ======================================================
	limited := middleware.RateLimitMiddleware()

	r.POST("/create-account", limited, authHandler.Register)
	r.POST("/barber-login", authHandler.Login)
	r.GET("/barbers", barberHandler.List)

	r.POST("/appointments", limited, appointmentHandler.Create)
	r.GET("/barber-appointments/:barberName", appointmentHandler.ListForBarber)
	r.GET("/user-appointments/:email", appointmentHandler.ListForCustomer)
	r.PUT("/appointments/:id/approve", appointmentHandler.Approve)
	r.DELETE("/appointments/:id", appointmentHandler.Reject)

	r.GET("/ws", wsHandler.Handle)
}
