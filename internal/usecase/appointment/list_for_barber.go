package appointment

import (
	"context"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/appointment"
	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type BarberAppointments struct {
	Pending   []models.Appointment
	Confirmed []models.Appointment
}

type ListForBarber struct {
	repo domain.Repository
}

func NewListForBarber(repo domain.Repository) *ListForBarber {
	return &ListForBarber{repo: repo}
}

// Execute returns the barber's appointments split by approval state.
// Order within each group is whatever the store yields.
func (uc *ListForBarber) Execute(
	ctx context.Context,
	barberName string,
) (*BarberAppointments, error) {

	apps, err := uc.repo.FindByBarber(ctx, barberName)
	if err != nil {
		return nil, err
	}

	pending, confirmed := domain.Partition(apps)

	return &BarberAppointments{
		Pending:   pending,
		Confirmed: confirmed,
	}, nil
}
