package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hvrSSB04/ssb-backend/internal/config"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/httpresp"
	"github.com/hvrSSB04/ssb-backend/internal/models"
	"github.com/hvrSSB04/ssb-backend/internal/token"
	ucAppointment "github.com/hvrSSB04/ssb-backend/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create          *ucAppointment.CreateAppointment
	approve         *ucAppointment.ApproveAppointment
	reject          *ucAppointment.RejectAppointment
	listForBarber   *ucAppointment.ListForBarber
	listForCustomer *ucAppointment.ListForCustomer
	config          *config.Config
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	approve *ucAppointment.ApproveAppointment,
	reject *ucAppointment.RejectAppointment,
	listForBarber *ucAppointment.ListForBarber,
	listForCustomer *ucAppointment.ListForCustomer,
	cfg *config.Config,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:          create,
		approve:         approve,
		reject:          reject,
		listForBarber:   listForBarber,
		listForCustomer: listForCustomer,
		config:          cfg,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type CreateAppointmentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Barber  string `json:"barber" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

type createAppointmentResponse struct {
	*models.Appointment
	// NotificationToken lets the customer join their own status channel.
	NotificationToken string `json:"notificationToken"`
}

type barberAppointmentsResponse struct {
	PendingAppointments   []models.Appointment `json:"pendingAppointments"`
	ConfirmedAppointments []models.Appointment `json:"confirmedAppointments"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// the legacy surface reported schema failures as a server error
		httperr.Internal(c, err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerName: req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Service:      req.Service,
		Barber:       req.Barber,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		httperr.Internal(c, "Failed to create appointment")
		return
	}

	channelToken, err := token.NewCustomerToken(h.config.JWTSecret, ap.Email)
	if err != nil {
		httperr.Internal(c, "Failed to create appointment")
		return
	}

	httpresp.Created(c, createAppointmentResponse{
		Appointment:       ap,
		NotificationToken: channelToken,
	})
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListForBarber(c *gin.Context) {
	barberName := c.Param("barberName")

	result, err := h.listForBarber.Execute(c.Request.Context(), barberName)
	if err != nil {
		httperr.Internal(c, "Failed to fetch appointments")
		return
	}

	httpresp.OK(c, barberAppointmentsResponse{
		PendingAppointments:   result.Pending,
		ConfirmedAppointments: result.Confirmed,
	})
}

func (h *AppointmentHandler) ListForCustomer(c *gin.Context) {
	email := c.Param("email")

	apps, err := h.listForCustomer.Execute(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "Failed to fetch appointments")
		return
	}

	// Returning customers join their channel with this instead of a raw
	// email; the body stays a plain array for the existing page.
	if channelToken, err := token.NewCustomerToken(h.config.JWTSecret, email); err == nil {
		c.Header("X-Notification-Token", channelToken)
	}

	httpresp.OK(c, apps)
}

// ======================================================
// APPROVE / REJECT
// ======================================================

func (h *AppointmentHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.approve.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		httperr.Internal(c, "Failed to approve appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.reject.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		httperr.Internal(c, "Failed to delete appointment")
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment deleted successfully"})
}
