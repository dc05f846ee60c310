package barber

import (
	"context"

	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		b *models.Barber,
	) error

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.Barber, error)

	// FindByIdentifier matches first name, last name or email, first hit wins.
	FindByIdentifier(
		ctx context.Context,
		identifier string,
	) (*models.Barber, error)

	// FindByFullName resolves a "First Last" display name. Compat shim for
	// the name-keyed surface; new references should use the barber id.
	FindByFullName(
		ctx context.Context,
		name string,
	) (*models.Barber, error)

	List(
		ctx context.Context,
	) ([]models.Barber, error)
}
