package appointment

import (
	"context"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/appointment"
	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type ListForCustomer struct {
	repo domain.Repository
}

func NewListForCustomer(repo domain.Repository) *ListForCustomer {
	return &ListForCustomer{repo: repo}
}

func (uc *ListForCustomer) Execute(
	ctx context.Context,
	email string,
) ([]models.Appointment, error) {

	apps, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Appointment{}
	}
	return apps, nil
}
