package hostelapi

import (
	"github.com/gechostel/hosteldesk/internal/domain"
)

// Mappers translate wire shapes into the client vocabulary. Every mapper
// is pure and total: each record maps to exactly one client-shaped value,
// with missing optional fields defaulting to domain.Placeholder and an
// unparsable floor digit defaulting to 1.

// MapRoom converts a room record to the client shape.
// Floor is derived from the leading digit of the room number; Available
// from the status enum.
func MapRoom(d roomDTO) domain.Room {
	return domain.Room{
		ID:        d.ID,
		Floor:     floorFromRoomNumber(d.RoomNumber),
		Room:      d.RoomNumber,
		Type:      d.RoomType,
		Available: d.Status == "available",
		Price:     d.PricePerNight,
		Capacity:  d.Capacity,
	}
}

// MapRooms converts a room listing
func MapRooms(dtos []roomDTO) []domain.Room {
	rooms := make([]domain.Room, 0, len(dtos))
	for _, d := range dtos {
		rooms = append(rooms, MapRoom(d))
	}
	return rooms
}

// floorFromRoomNumber takes the leading digit of the room number, or 1
// when the number does not start with a digit.
func floorFromRoomNumber(roomNumber string) int {
	if roomNumber == "" {
		return 1
	}
	c := roomNumber[0]
	if c < '1' || c > '9' {
		return 1
	}
	return int(c - '0')
}

// MapUser converts an account record to the client shape
func MapUser(d userDTO) domain.User {
	role := domain.Role(d.Role)
	if role == "" {
		role = domain.RoleStudent
	}
	return domain.User{
		ID:             d.ID,
		FullName:       d.FullName,
		Email:          d.Email,
		Phone:          orPlaceholder(d.Phone),
		Role:           role,
		StudentID:      d.StudentID,
		RollNumber:     orPlaceholder(d.RollNumber),
		Batch:          orPlaceholder(d.Batch),
		Branch:         orPlaceholder(d.Branch),
		HostelType:     orPlaceholder(d.HostelType),
		RoomPreference: orPlaceholder(d.RoomPreference),
		AssignedRoom:   orPlaceholder(d.AssignedRoom),
		PhotoURL:       d.PhotoURL,
		CreatedAt:      d.CreatedAt,
	}
}

// MapUsers converts an account listing
func MapUsers(dtos []userDTO) []domain.User {
	users := make([]domain.User, 0, len(dtos))
	for _, d := range dtos {
		users = append(users, MapUser(d))
	}
	return users
}

// MapNotice converts a notice record
func MapNotice(d noticeDTO) domain.Notice {
	return domain.Notice{ID: d.ID, Text: d.Text, CreatedAt: d.CreatedAt}
}

// MapNotices converts a notice listing
func MapNotices(dtos []noticeDTO) []domain.Notice {
	notices := make([]domain.Notice, 0, len(dtos))
	for _, d := range dtos {
		notices = append(notices, MapNotice(d))
	}
	return notices
}

// MapComplaint converts a complaint record. When the server omits the
// priority, it is derived from the category so the client shape stays total.
func MapComplaint(d complaintDTO) domain.Complaint {
	priority := d.Priority
	if priority == "" {
		priority = priorityForCategory(d.Category)
	}
	status := d.Status
	if status == "" {
		status = "open"
	}
	return domain.Complaint{
		ID:          d.ID,
		Ticket:      d.Ticket,
		StudentID:   d.StudentID,
		Category:    d.Category,
		Description: d.Description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   d.CreatedAt,
	}
}

// MapComplaints converts a complaint listing
func MapComplaints(dtos []complaintDTO) []domain.Complaint {
	complaints := make([]domain.Complaint, 0, len(dtos))
	for _, d := range dtos {
		complaints = append(complaints, MapComplaint(d))
	}
	return complaints
}

// priorityForCategory assigns a default triage priority per category
func priorityForCategory(category string) string {
	switch category {
	case "security", "electrical":
		return "high"
	case "water", "plumbing":
		return "medium"
	default:
		return "normal"
	}
}

// MapPayment converts a payment record
func MapPayment(d paymentDTO) domain.Payment {
	status := d.Status
	if status == "" {
		status = "pending"
	}
	return domain.Payment{
		ID:            d.ID,
		TransactionID: d.TransactionID,
		StudentName:   d.StudentName,
		StudentID:     d.StudentID,
		Email:         orPlaceholder(d.Email),
		Phone:         orPlaceholder(d.Phone),
		FeeType:       d.FeeType,
		Amount:        d.Amount,
		Method:        d.Method,
		AdminUPIID:    d.AdminUPIID,
		Status:        status,
		CreatedAt:     d.CreatedAt,
	}
}

// MapPayments converts a payment listing
func MapPayments(dtos []paymentDTO) []domain.Payment {
	payments := make([]domain.Payment, 0, len(dtos))
	for _, d := range dtos {
		payments = append(payments, MapPayment(d))
	}
	return payments
}

// MapBooking converts a booking record
func MapBooking(d bookingDTO) domain.Booking {
	return domain.Booking{
		ID:            d.ID,
		UserID:        d.UserID,
		RoomID:        d.RoomID,
		RoomNumber:    d.RoomNumber,
		StudentID:     d.StudentID,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Status:        d.Status,
		TotalAmount:   d.TotalAmount,
		PaymentStatus: orPlaceholder(d.PaymentStatus),
		CreatedAt:     d.CreatedAt,
	}
}

// MapBookings converts a booking listing
func MapBookings(dtos []bookingDTO) []domain.Booking {
	bookings := make([]domain.Booking, 0, len(dtos))
	for _, d := range dtos {
		bookings = append(bookings, MapBooking(d))
	}
	return bookings
}

// MapFees converts the fee schedule, falling back to the built-in
// schedule per field so a partial record still renders
func MapFees(d feesDTO) domain.FeeSchedule {
	defaults := domain.DefaultFees()
	fees := domain.FeeSchedule{Mess: d.Mess, Single: d.Single, Triple: d.Triple}
	if fees.Mess == "" {
		fees.Mess = defaults.Mess
	}
	if fees.Single == "" {
		fees.Single = defaults.Single
	}
	if fees.Triple == "" {
		fees.Triple = defaults.Triple
	}
	return fees
}

// MapStats converts the aggregate counts. Floors is fixed at 4 when the
// server omits it; the hostel has four floors.
func MapStats(d statsDTO) domain.Stats {
	floors := d.Floors
	if floors == 0 {
		floors = 4
	}
	return domain.Stats{
		AvailableRooms: d.AvailableRooms,
		Students:       d.Students,
		Notices:        d.Notices,
		Floors:         floors,
	}
}

// orPlaceholder substitutes the display placeholder for empty optional fields
func orPlaceholder(s string) string {
	if s == "" {
		return domain.Placeholder
	}
	return s
}
