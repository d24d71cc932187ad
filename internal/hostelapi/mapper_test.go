package hostelapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gechostel/hosteldesk/internal/domain"
)

func TestMapRoomFloorFromRoomNumber(t *testing.T) {
	tests := []struct {
		roomNumber string
		floor      int
	}{
		{"101", 1},
		{"209", 2},
		{"410", 4},
		{"A12", 1}, // non-digit prefix falls back to floor 1
		{"", 1},
		{"042", 1}, // leading zero is not a floor
	}

	for _, tt := range tests {
		room := MapRoom(roomDTO{RoomNumber: tt.roomNumber})
		assert.Equal(t, tt.floor, room.Floor, "room %q", tt.roomNumber)
	}
}

func TestMapRoomAvailability(t *testing.T) {
	assert.True(t, MapRoom(roomDTO{RoomNumber: "101", Status: "available"}).Available)
	assert.False(t, MapRoom(roomDTO{RoomNumber: "101", Status: "occupied"}).Available)
	assert.False(t, MapRoom(roomDTO{RoomNumber: "101", Status: "maintenance"}).Available)
	assert.False(t, MapRoom(roomDTO{RoomNumber: "101"}).Available)
}

func TestMapUserPlaceholders(t *testing.T) {
	user := MapUser(userDTO{
		ID:       3,
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
	})

	assert.Equal(t, domain.Placeholder, user.Phone)
	assert.Equal(t, domain.Placeholder, user.RollNumber)
	assert.Equal(t, domain.Placeholder, user.Batch)
	assert.Equal(t, domain.Placeholder, user.Branch)
	assert.Equal(t, domain.Placeholder, user.AssignedRoom)

	// Set fields pass through untouched
	assert.Equal(t, "Ravi Kumar", user.FullName)
}

func TestMapUserDefaultRole(t *testing.T) {
	assert.Equal(t, domain.RoleStudent, MapUser(userDTO{}).Role)
	assert.Equal(t, domain.RoleAdmin, MapUser(userDTO{Role: "admin"}).Role)
}

func TestMapComplaintPriorityFromCategory(t *testing.T) {
	tests := []struct {
		category string
		priority string
	}{
		{"security", "high"},
		{"electrical", "high"},
		{"water", "medium"},
		{"plumbing", "medium"},
		{"cleaning", "normal"},
		{"other", "normal"},
	}

	for _, tt := range tests {
		c := MapComplaint(complaintDTO{Category: tt.category})
		assert.Equal(t, tt.priority, c.Priority, "category %q", tt.category)
	}
}

func TestMapComplaintServerPriorityWins(t *testing.T) {
	c := MapComplaint(complaintDTO{Category: "cleaning", Priority: "high"})
	assert.Equal(t, "high", c.Priority)
}

func TestMapComplaintDefaultStatus(t *testing.T) {
	assert.Equal(t, "open", MapComplaint(complaintDTO{}).Status)
	assert.Equal(t, "resolved", MapComplaint(complaintDTO{Status: "resolved"}).Status)
}

func TestMapPaymentDefaultStatus(t *testing.T) {
	assert.Equal(t, "pending", MapPayment(paymentDTO{}).Status)
	assert.Equal(t, "confirmed", MapPayment(paymentDTO{Status: "confirmed"}).Status)
}

func TestMapFeesPartialRecord(t *testing.T) {
	fees := MapFees(feesDTO{Mess: "₹ 4,000 / month"})
	defaults := domain.DefaultFees()

	assert.Equal(t, "₹ 4,000 / month", fees.Mess)
	assert.Equal(t, defaults.Single, fees.Single)
	assert.Equal(t, defaults.Triple, fees.Triple)
}

func TestMapStatsDefaultFloors(t *testing.T) {
	assert.Equal(t, 4, MapStats(statsDTO{}).Floors)
	assert.Equal(t, 6, MapStats(statsDTO{Floors: 6}).Floors)
}
