package appointment

import "github.com/hvrSSB04/ssb-backend/internal/models"

// ===============================
// Lifecycle
// ===============================
//
// An appointment is created pending (approved = false) and either gets
// approved (flag flips to true, terminal) or rejected (record removed).
// There is no un-approve.

func Approve(ap *models.Appointment) {
	ap.Approved = true
}

// Partition splits a barber's appointments into pending and confirmed,
// preserving store-return order within each group.
func Partition(apps []models.Appointment) (pending, confirmed []models.Appointment) {
	pending = make([]models.Appointment, 0, len(apps))
	confirmed = make([]models.Appointment, 0)

	for _, ap := range apps {
		if ap.Approved {
			confirmed = append(confirmed, ap)
		} else {
			pending = append(pending, ap)
		}
	}

	return pending, confirmed
}
