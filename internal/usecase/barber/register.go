package barber

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/barber"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	ShopName    string
	Address     string
	Experience  string
	Specialties []string
	Password    string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo domain.Repository
}

func NewRegister(repo domain.Repository) *Register {
	return &Register{repo: repo}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.Barber, error) {

	// Fast path; the store's unique email index is the real guard against
	// two concurrent registrations.
	if _, err := uc.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, httperr.ErrBusiness("email_already_exists")
	} else if !httperr.IsBusiness(err, "barber_not_found") {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	specialties := in.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	b := &models.Barber{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		ShopName:     in.ShopName,
		Address:      in.Address,
		Experience:   in.Experience,
		Specialties:  specialties,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
