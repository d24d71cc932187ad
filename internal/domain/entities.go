package domain

// Role identifies what a logged-in user is allowed to see and do.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
)

// Placeholder is shown for optional display fields the server did not set.
const Placeholder = "—"

// User is the client-shaped snapshot of an account record.
// The authoritative copy lives server-side; the façade caches at most
// the current user's own record.
type User struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           Role   `json:"role"`
	StudentID      string `json:"studentId"`
	RollNumber     string `json:"rollNumber"`
	Batch          string `json:"batch"`
	Branch         string `json:"branch"`
	HostelType     string `json:"hostelType"`
	RoomPreference string `json:"roomPreference"`
	AssignedRoom   string `json:"assignedRoom"`
	PhotoURL       string `json:"photo"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Session is the authenticated identity held by the client.
// A non-nil Session implies a previously successful login or signup;
// token and user are always persisted and cleared together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.Role == RoleAdmin
}

// Room is a hostel room as presented to the client.
type Room struct {
	ID        int64   `json:"id"`
	Floor     int     `json:"floor"`
	Room      string  `json:"room"`
	Type      string  `json:"type"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
	Capacity  int     `json:"capacity"`
}

// Notice is a hostel notice board entry.
type Notice struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Complaint is a maintenance/security complaint ticket.
type Complaint struct {
	ID          int64  `json:"id"`
	Ticket      int64  `json:"ticket"`
	StudentID   string `json:"studentId"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Payment is a submitted fee payment awaiting (or past) admin review.
type Payment struct {
	ID            int64   `json:"id"`
	TransactionID string  `json:"transactionId"`
	StudentName   string  `json:"studentName"`
	StudentID     string  `json:"studentId"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	FeeType       string  `json:"feeType"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"paymentMethod"`
	AdminUPIID    string  `json:"adminUpiId"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// Booking is a room booking made by a student.
type Booking struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	RoomID        int64   `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
	StudentID     string  `json:"studentId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"timestamp,omitempty"`
}

// FeeSchedule is the current fee table shown on the fees page.
type FeeSchedule struct {
	Mess   string `json:"mess"`
	Single string `json:"single"`
	Triple string `json:"triple"`
}

// Stats are the aggregate counts shown on the home page.
type Stats struct {
	AvailableRooms int `json:"availableRooms"`
	Students       int `json:"students"`
	Notices        int `json:"notices"`
	Floors         int `json:"floors"`
}

// SignupInput carries the fields collected by the signup form.
type SignupInput struct {
	FullName       string
	Email          string
	Phone          string
	Password       string
	StudentID      string
	RollNumber     string
	Batch          string
	Branch         string
	HostelType     string
	RoomPreference string
	AssignedRoom   string
	PhotoURL       string
}

// ComplaintInput carries a new complaint submission.
type ComplaintInput struct {
	StudentID   string
	Category    string
	Description string
}

// PaymentInput carries a new payment submission.
type PaymentInput struct {
	TransactionID string
	StudentName   string
	StudentID     string
	Email         string
	Phone         string
	FeeType       string
	Amount        float64
	Method        string
	AdminUPIID    string
}

// BookingInput carries a new booking request.
type BookingInput struct {
	RoomID    int64
	RoomNum   string
	StudentID string
	CheckIn   string
	CheckOut  string
}

// RoomInput carries an admin room create/update.
type RoomInput struct {
	Room      string
	Type      string
	Available bool
	Price     float64
	Capacity  int
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Phone          string
	RoomPreference string
	PhotoURL       string
}

// PaymentReview identifies a payment for admin confirm/reject.
// Either the payment id or the transaction id may be set.
type PaymentReview struct {
	PaymentID     int64
	TransactionID string
}
