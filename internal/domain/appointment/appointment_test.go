package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvrSSB04/ssb-backend/internal/models"
)

func TestApprove(t *testing.T) {
	ap := &models.Appointment{Approved: false}

	Approve(ap)
	assert.True(t, ap.Approved)

	// approving again is a no-op in effect
	Approve(ap)
	assert.True(t, ap.Approved)
}

func TestPartition(t *testing.T) {
	apps := []models.Appointment{
		{ID: "a", Approved: false},
		{ID: "b", Approved: true},
		{ID: "c", Approved: false},
		{ID: "d", Approved: true},
		{ID: "e", Approved: false},
	}

	pending, confirmed := Partition(apps)

	assert.Len(t, pending, 3)
	assert.Len(t, confirmed, 2)

	// store-return order is preserved within each group
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)
	assert.Equal(t, "e", pending[2].ID)
	assert.Equal(t, "b", confirmed[0].ID)
	assert.Equal(t, "d", confirmed[1].ID)
}

func TestPartitionEmpty(t *testing.T) {
	pending, confirmed := Partition(nil)

	assert.NotNil(t, pending)
	assert.NotNil(t, confirmed)
	assert.Empty(t, pending)
	assert.Empty(t, confirmed)
}
