package domain

import "context"

// Prober checks whether the backend is currently responsive.
type Prober interface {
	// CheckHealth returns nil only if the backend answered the liveness
	// probe with an explicit affirmative.
	CheckHealth(ctx context.Context) error
}

// Backend is the HTTP surface the façade talks to. Implementations own
// authentication headers; SetToken installs the bearer token used on
// subsequent authenticated requests.
type Backend interface {
	Prober

	SetToken(token string)

	// Auth
	Signup(ctx context.Context, in SignupInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)

	// Rooms
	GetRooms(ctx context.Context) ([]Room, error)
	SaveRoom(ctx context.Context, in RoomInput) (*Room, error)
	DeleteRoom(ctx context.Context, roomNumber string) error

	// Notices
	GetNotices(ctx context.Context) ([]Notice, error)
	AddNotice(ctx context.Context, text string) (*Notice, error)
	DeleteNotice(ctx context.Context, id int64) error

	// Complaints
	GetComplaints(ctx context.Context) ([]Complaint, error)
	SubmitComplaint(ctx context.Context, in ComplaintInput) (*Complaint, error)

	// Payments
	GetPayments(ctx context.Context) ([]Payment, error)
	SubmitPayment(ctx context.Context, in PaymentInput) (*Payment, error)
	MarkPaymentPaid(ctx context.Context, transactionID string) (*Payment, error)

	// Bookings
	GetBookings(ctx context.Context) ([]Booking, error)
	CreateBooking(ctx context.Context, in BookingInput) (*Booking, error)

	// Profile
	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, in ProfileUpdate) (*User, error)
	GetMyBookings(ctx context.Context) ([]Booking, error)

	// Admin
	AdminGetStudents(ctx context.Context) ([]User, error)
	AdminGetStudent(ctx context.Context, id int64) (*User, error)
	AdminGetPayments(ctx context.Context) ([]Payment, error)
	AdminConfirmPayment(ctx context.Context, in PaymentReview) (*Payment, error)
	AdminRejectPayment(ctx context.Context, in PaymentReview) (*Payment, error)
	AdminGetStats(ctx context.Context) (*Stats, error)

	// Fees and stats
	GetFees(ctx context.Context) (*FeeSchedule, error)
	SetFees(ctx context.Context, fees FeeSchedule) error
	GetStats(ctx context.Context) (*Stats, error)
}

// CacheStore is the local last-known-good store. Collections are only
// ever written from successful reads; the session slot is only written
// after a confirmed login, signup, or profile refresh.
type CacheStore interface {
	// Session slot. SaveSession persists token and user snapshot in one
	// transaction; ClearSession removes both together.
	Session() (*Session, bool)
	SaveSession(s *Session) error
	ClearSession() error

	Rooms() ([]Room, bool)
	SaveRooms(rooms []Room) error

	Notices() ([]Notice, bool)
	SaveNotices(notices []Notice) error

	Complaints() ([]Complaint, bool)
	SaveComplaints(complaints []Complaint) error

	Payments() ([]Payment, bool)
	SavePayments(payments []Payment) error

	Bookings() ([]Booking, bool)
	SaveBookings(bookings []Booking) error

	AdminStudents() ([]User, bool)
	SaveAdminStudents(students []User) error

	AdminPayments() ([]Payment, bool)
	SaveAdminPayments(payments []Payment) error

	Fees() (*FeeSchedule, bool)
	SaveFees(fees FeeSchedule) error

	InvalidateAll()
	Close() error
}
