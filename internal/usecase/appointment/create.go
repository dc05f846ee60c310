package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/appointment"
	barberDomain "github.com/hvrSSB04/ssb-backend/internal/domain/barber"
	"github.com/hvrSSB04/ssb-backend/internal/models"
	"github.com/hvrSSB04/ssb-backend/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName string
	Email        string
	Phone        string
	Service      string
	Barber       string // display name
	Date         string
	Time         string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	barbers barberDomain.Repository
	notify  notify.Publisher
}

func NewCreateAppointment(
	repo domain.Repository,
	barbers barberDomain.Repository,
	notify notify.Publisher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		barbers: barbers,
		notify:  notify,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Resolve the stable reference when the display name matches a
	// registered barber. An unknown name still books: the legacy surface
	// never required the barber to exist.
	barberID := ""
	if b, err := uc.barbers.FindByFullName(ctx, in.Barber); err == nil {
		barberID = b.ID
	}

	ap := &models.Appointment{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Service:      in.Service,
		BarberID:     barberID,
		Barber:       in.Barber,
		Date:         in.Date,
		Time:         in.Time,
		Notes:        in.Notes,
		Approved:     false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Publish(notify.BarberChannel(ap.Barber), notify.EventNewAppointment, ap)

	return ap, nil
}
