package appointment

import (
	"context"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/appointment"
	"github.com/hvrSSB04/ssb-backend/internal/models"
	"github.com/hvrSSB04/ssb-backend/internal/notify"
)

type ApproveAppointment struct {
	repo   domain.Repository
	notify notify.Publisher
}

func NewApproveAppointment(
	repo domain.Repository,
	notify notify.Publisher,
) *ApproveAppointment {
	return &ApproveAppointment{
		repo:   repo,
		notify: notify,
	}
}

// Execute flips the approval flag. Approving an already approved
// appointment leaves it approved; each call still publishes.
func (uc *ApproveAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.SetApproved(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.notify.Publish(
		notify.UserChannel(ap.Email),
		notify.EventStatusChanged,
		notify.StatusChangedPayload{
			ID:          ap.ID,
			Status:      notify.StatusApproved,
			Appointment: ap,
		},
	)

	return ap, nil
}
