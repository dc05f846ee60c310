package appointment

import (
	"context"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/appointment"
	"github.com/hvrSSB04/ssb-backend/internal/models"
	"github.com/hvrSSB04/ssb-backend/internal/notify"
)

type RejectAppointment struct {
	repo   domain.Repository
	notify notify.Publisher
}

func NewRejectAppointment(
	repo domain.Repository,
	notify notify.Publisher,
) *RejectAppointment {
	return &RejectAppointment{
		repo:   repo,
		notify: notify,
	}
}

// Execute removes the appointment and notifies the customer. The channel
// key and the event payload both come from the deletion snapshot; the
// record no longer exists by the time the event goes out.
func (uc *RejectAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.DeleteAndReturn(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.notify.Publish(
		notify.UserChannel(ap.Email),
		notify.EventStatusChanged,
		notify.StatusChangedPayload{
			ID:          ap.ID,
			Status:      notify.StatusRejected,
			Appointment: ap,
		},
	)

	return ap, nil
}
