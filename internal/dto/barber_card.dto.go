package dto

import (
	"strings"

	"github.com/hvrSSB04/ssb-backend/internal/models"
)

// BarberCardDTO is the directory listing entry the booking UI renders.
// Name is also the join key appointments reference, so its shape
// (first + space + last) is load-bearing.
type BarberCardDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Experience  string   `json:"experience"`
	ShopName    string   `json:"shopName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
	Image       string   `json:"image"`
}

func NewBarberCard(b models.Barber) BarberCardDTO {
	role := b.Experience
	if !strings.Contains(role, "yrs") {
		role = b.Experience + " Experience"
	}

	specialties := b.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return BarberCardDTO{
		ID:          b.ID,
		Name:        b.FullName(),
		Role:        role,
		Experience:  b.Experience + " of experience",
		ShopName:    b.ShopName,
		Email:       b.Email,
		Phone:       b.Phone,
		Specialties: specialties,
		Image:       "https://placehold.co/300x300/e2e8f0/475569?text=" + b.FirstName,
	}
}

func NewBarberCards(barbers []models.Barber) []BarberCardDTO {
	cards := make([]BarberCardDTO, 0, len(barbers))
	for _, b := range barbers {
		cards = append(cards, NewBarberCard(b))
	}
	return cards
}
