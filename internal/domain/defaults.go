package domain

import "fmt"

// Built-in fallbacks shown when the client is offline and nothing has
// been cached yet. These mirror the seed data the hostel opened with.

// DefaultRooms synthesizes the standard room grid: four floors of ten
// rooms, every third room a triple, all marked available.
func DefaultRooms() []Room {
	var rooms []Room
	for floor := 1; floor <= 4; floor++ {
		for i := 1; i <= 10; i++ {
			capacity := 1
			roomType := "single"
			if i%3 == 0 {
				capacity = 3
				roomType = "triple"
			}
			rooms = append(rooms, Room{
				Floor:     floor,
				Room:      fmt.Sprintf("%d0%d", floor, i),
				Type:      roomType,
				Available: true,
				Capacity:  capacity,
			})
		}
	}
	return rooms
}

// DefaultNotices returns the canned notices shown before any fetch succeeds.
func DefaultNotices() []Notice {
	return []Notice{
		{ID: 1, Text: "Admission for Semester VII hostel opens on 15th Sept."},
		{ID: 2, Text: "Mess will be closed on public holiday (19th Sept)."},
		{ID: 3, Text: "Submit anti-ragging affidavit before 30th Sept."},
	}
}

// DefaultFees returns the fee schedule shown before any fetch succeeds.
func DefaultFees() FeeSchedule {
	return FeeSchedule{
		Mess:   "₹ 3,500 / month",
		Single: "₹ 18,000 / year",
		Triple: "₹ 15,000 / year",
	}
}
