package tui

import (
	"fmt"

	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/tui/styles"
)

// Row formatters: one display line per record. These render the client
// vocabulary only; any wire-shape translation already happened in the
// façade.

func roomRows(rooms []domain.Room) []string {
	rows := make([]string, len(rooms))
	for i, r := range rooms {
		dot := styles.OccupiedDot
		if r.Available {
			dot = styles.AvailableDot
		}
		rows[i] = fmt.Sprintf("%s %-6s floor %d  %-7s cap %d", dot, r.Room, r.Floor, r.Type, r.Capacity)
	}
	return rows
}

func noticeRows(notices []domain.Notice) []string {
	rows := make([]string, len(notices))
	for i, n := range notices {
		rows[i] = n.Text
	}
	return rows
}

func bookingRows(bookings []domain.Booking) []string {
	rows := make([]string, len(bookings))
	for i, b := range bookings {
		rows[i] = fmt.Sprintf("room %-6s %s → %s  %s (%s)", b.RoomNumber, b.CheckIn, b.CheckOut, b.Status, b.PaymentStatus)
	}
	return rows
}

func complaintRows(complaints []domain.Complaint) []string {
	rows := make([]string, len(complaints))
	for i, c := range complaints {
		rows[i] = fmt.Sprintf("#%-6d %-10s %-7s %s", c.Ticket, c.Category, c.Priority, c.Description)
	}
	return rows
}

func paymentRows(payments []domain.Payment) []string {
	rows := make([]string, len(payments))
	for i, p := range payments {
		rows[i] = fmt.Sprintf("%-18s %-10s ₹%.0f  %s", p.TransactionID, p.FeeType, p.Amount, p.Status)
	}
	return rows
}

func studentRows(students []domain.User) []string {
	rows := make([]string, len(students))
	for i, u := range students {
		rows[i] = fmt.Sprintf("%-20s %-10s %s/%s room %s", u.FullName, u.StudentID, u.Batch, u.Branch, u.AssignedRoom)
	}
	return rows
}

// profileView renders the profile tab body
func profileView(user *domain.User, fees domain.FeeSchedule) string {
	if user == nil {
		return styles.DimStyle.Render("not logged in")
	}
	return fmt.Sprintf(
		"%s\n%s\n\n%s %s\n%s %s\n%s %s\n%s %s\n%s %s\n\n%s\n%s mess %s · single %s · triple %s",
		styles.TitleStyle.Render(user.FullName),
		styles.SubtitleStyle.Render(fmt.Sprintf("%s · %s", user.Email, user.Role)),
		styles.DimStyle.Render("student id:"), user.StudentID,
		styles.DimStyle.Render("roll:"), user.RollNumber,
		styles.DimStyle.Render("batch/branch:"), fmt.Sprintf("%s / %s", user.Batch, user.Branch),
		styles.DimStyle.Render("room:"), user.AssignedRoom,
		styles.DimStyle.Render("preference:"), user.RoomPreference,
		styles.TitleStyle.Render("Fee schedule"),
		styles.DimStyle.Render("·"), fees.Mess, fees.Single, fees.Triple,
	)
}

// statsLine renders the header counts
func statsLine(stats domain.Stats, online bool) string {
	badge := styles.OfflineBadge
	if online {
		badge = styles.OnlineBadge
	}
	return fmt.Sprintf("%s  %s",
		styles.SubtitleStyle.Render(fmt.Sprintf(
			"%d rooms free · %d students · %d notices · %d floors",
			stats.AvailableRooms, stats.Students, stats.Notices, stats.Floors)),
		badge,
	)
}
