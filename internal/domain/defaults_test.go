package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gechostel/hosteldesk/internal/domain"
)

func TestDefaultRoomsGrid(t *testing.T) {
	rooms := domain.DefaultRooms()
	require.Len(t, rooms, 40)

	for i, r := range rooms {
		floor := i/10 + 1
		num := i%10 + 1

		assert.Equal(t, floor, r.Floor)
		assert.Equal(t, fmt.Sprintf("%d0%d", floor, num), r.Room)
		assert.True(t, r.Available)

		if num%3 == 0 {
			assert.Equal(t, "triple", r.Type)
			assert.Equal(t, 3, r.Capacity)
		} else {
			assert.Equal(t, "single", r.Type)
			assert.Equal(t, 1, r.Capacity)
		}
	}
}

func TestDefaultNotices(t *testing.T) {
	notices := domain.DefaultNotices()
	require.Len(t, notices, 3)
	assert.Equal(t, "Admission for Semester VII hostel opens on 15th Sept.", notices[0].Text)
}

func TestDefaultFees(t *testing.T) {
	fees := domain.DefaultFees()
	assert.Equal(t, "₹ 3,500 / month", fees.Mess)
	assert.Equal(t, "₹ 18,000 / year", fees.Single)
	assert.Equal(t, "₹ 15,000 / year", fees.Triple)
}
