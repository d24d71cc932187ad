package hostelapi

// Wire shapes returned by the hostel backend. Persistence vocabulary is
// snake_case; translation into the client vocabulary happens in mapper.go
// and nowhere else.

// healthDTO is the /health probe response
type healthDTO struct {
	OK bool `json:"ok"`
}

// errorDTO is the error description object carried by non-2xx responses
type errorDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// userDTO is an account record; auth responses additionally carry a token
type userDTO struct {
	ID             int64  `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	Token          string `json:"token,omitempty"`
	StudentID      string `json:"student_id"`
	RollNumber     string `json:"roll_number"`
	Batch          string `json:"batch"`
	Branch         string `json:"branch"`
	HostelType     string `json:"hostel_type"`
	RoomPreference string `json:"room_preference"`
	AssignedRoom   string `json:"assigned_room"`
	PhotoURL       string `json:"photo_url"`
	CreatedAt      string `json:"created_at"`
}

type roomDTO struct {
	ID            int64   `json:"id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	Status        string  `json:"status"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
}

type noticeDTO struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type complaintDTO struct {
	ID          int64  `json:"id"`
	Ticket      int64  `json:"ticket"`
	StudentID   string `json:"student_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type paymentDTO struct {
	ID            int64   `json:"id"`
	TransactionID string  `json:"transaction_id"`
	StudentName   string  `json:"student_name"`
	StudentID     string  `json:"student_id"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	FeeType       string  `json:"fee_type"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"payment_method"`
	AdminUPIID    string  `json:"admin_upi_id"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type bookingDTO struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	RoomID        int64   `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	StudentID     string  `json:"student_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}

// feesDTO uses the same keys on both sides of the wire
type feesDTO struct {
	Mess   string `json:"mess"`
	Single string `json:"single"`
	Triple string `json:"triple"`
}

// statsDTO is already camelCase on the wire
type statsDTO struct {
	AvailableRooms int `json:"availableRooms"`
	Students       int `json:"students"`
	Notices        int `json:"notices"`
	Floors         int `json:"floors"`
}

// Request bodies

type signupRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Password       string `json:"password"`
	StudentID      string `json:"student_id"`
	RollNumber     string `json:"roll_number"`
	Batch          string `json:"batch"`
	Branch         string `json:"branch"`
	HostelType     string `json:"hostel_type"`
	RoomPreference string `json:"room_preference"`
	AssignedRoom   string `json:"assigned_room,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type roomRequest struct {
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	Status        string  `json:"status"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	Capacity      int     `json:"capacity,omitempty"`
}

type noticeRequest struct {
	Text string `json:"text"`
}

type complaintRequest struct {
	StudentID   string `json:"student_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type paymentRequest struct {
	TransactionID string  `json:"transaction_id"`
	StudentName   string  `json:"student_name"`
	StudentID     string  `json:"student_id"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	FeeType       string  `json:"fee_type"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"payment_method"`
	AdminUPIID    string  `json:"admin_upi_id,omitempty"`
}

type bookingRequest struct {
	RoomID     int64  `json:"room_id,omitempty"`
	RoomNumber string `json:"room_number,omitempty"`
	StudentID  string `json:"student_id,omitempty"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type profileUpdateRequest struct {
	Phone          string `json:"phone"`
	RoomPreference string `json:"room_preference"`
	PhotoURL       string `json:"photo_url"`
}

type paymentReviewRequest struct {
	PaymentID     int64  `json:"paymentId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}
