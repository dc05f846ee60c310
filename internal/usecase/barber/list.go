package barber

import (
	"context"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/barber"
	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context) ([]models.Barber, error) {
	return uc.repo.List(ctx)
}
