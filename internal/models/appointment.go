package models

import "time"

type Appointment struct {
	ID string `bson:"_id" json:"id"`

	CustomerName string `bson:"customer_name" json:"customerName"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`

	Service string `bson:"service" json:"service"`

	// BarberID is the stable reference; Barber keeps the display name the
	// legacy surface still matches and routes notifications by.
	BarberID string `bson:"barber_id" json:"barberId"`
	Barber   string `bson:"barber" json:"barber"`

	Date  string `bson:"date" json:"date"`
	Time  string `bson:"time" json:"time"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	Approved bool `bson:"approved" json:"approved"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
