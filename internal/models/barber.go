package models

import "time"

type Barber struct {
	ID        string `bson:"_id" json:"id"`
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	ShopName  string `bson:"shop_name" json:"shopName"`
	Address   string `bson:"address" json:"address"`

	// Free-text descriptor like "3-5 yrs"; presentation formatting lives in dto.
	Experience  string   `bson:"experience" json:"experience"`
	Specialties []string `bson:"specialties" json:"specialties"`

	PasswordHash string `bson:"password_hash" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// FullName is the display name appointments reference and the
// `barber:<name>` channel is keyed by.
func (b *Barber) FullName() string {
	return b.FirstName + " " + b.LastName
}
