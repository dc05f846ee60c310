package notify

import "github.com/hvrSSB04/ssb-backend/internal/models"

// Event names on the wire.
const (
	EventNewAppointment = "new_appointment"
	EventStatusChanged  = "appointment_status_changed"
)

// Status values carried by appointment_status_changed.
const (
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Channel keys. One family per audience: customers are keyed by email,
// barbers by display name.
func UserChannel(email string) string {
	return "user:" + email
}

func BarberChannel(name string) string {
	return "barber:" + name
}

// Publisher is what the booking workflow publishes through. Delivery is
// fire-and-forget: no persistence, no replay, no acknowledgement.
type Publisher interface {
	Publish(channel, event string, payload any)
}

type StatusChangedPayload struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Appointment *models.Appointment `json:"appointment"`
}
