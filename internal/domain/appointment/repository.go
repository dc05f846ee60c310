package appointment

import (
	"context"

	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// FindByBarber matches the display-name reference appointments carry.
	FindByBarber(
		ctx context.Context,
		barberName string,
	) ([]models.Appointment, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) ([]models.Appointment, error)

	// SetApproved flips the approval flag and returns the updated record.
	SetApproved(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// DeleteAndReturn removes the record in a single atomic step and
	// returns the pre-deletion snapshot.
	DeleteAndReturn(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)
}
