package barber

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/barber"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

// Execute matches the identifier against first name, last name or email
// and verifies the password. Unknown identifier and bad password are
// indistinguishable to the caller.
func (uc *Login) Execute(
	ctx context.Context,
	identifier string,
	password string,
) (*models.Barber, error) {

	b, err := uc.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return b, nil
}
