package hostelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gechostel/hosteldesk/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "HostelDesk/1.0"
)

// Client implements domain.Backend against the hostel HTTP API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new hostel API client
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SetToken installs the bearer token sent on subsequent requests.
// An empty token clears the authorization header.
func (c *Client) SetToken(token string) {
	c.token = token
}

// doRequest performs an HTTP round trip and classifies failures:
// transport errors become offline errors, non-2xx statuses become server
// errors carrying the server's own description verbatim.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "path", path, "error", err)
		return nil, domain.NewOfflineError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var desc errorDTO
		_ = json.Unmarshal(respBody, &desc)
		message := desc.Error
		if message == "" {
			message = desc.Message
		}
		c.logger.Error("api request error", "method", method, "path", path, "status", resp.StatusCode, "message", message)
		return nil, domain.NewServerError(resp.StatusCode, message)
	}

	return respBody, nil
}

// decode parses a 2xx response body into dest
func decode[T any](body []byte) (T, error) {
	var dest T
	if err := json.Unmarshal(body, &dest); err != nil {
		return dest, fmt.Errorf("failed to parse response: %w", err)
	}
	return dest, nil
}

// CheckHealth issues the liveness probe. Only a well-formed, explicitly
// affirmative body counts as alive; the caller bounds the probe with ctx.
func (c *Client) CheckHealth(ctx context.Context) error {
	body, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	health, err := decode[healthDTO](body)
	if err != nil {
		return err
	}
	if !health.OK {
		return fmt.Errorf("health probe not affirmative")
	}
	return nil
}

// === Auth ===

// Signup registers a new student account and returns the resulting session.
func (c *Client) Signup(ctx context.Context, in domain.SignupInput) (*domain.Session, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", signupRequest{
		FullName:       in.FullName,
		Email:          in.Email,
		Phone:          in.Phone,
		Password:       in.Password,
		StudentID:      in.StudentID,
		RollNumber:     in.RollNumber,
		Batch:          in.Batch,
		Branch:         in.Branch,
		HostelType:     in.HostelType,
		RoomPreference: in.RoomPreference,
		AssignedRoom:   in.AssignedRoom,
		PhotoURL:       in.PhotoURL,
	})
	if err != nil {
		return nil, err
	}
	res, err := decode[userDTO](body)
	if err != nil {
		return nil, err
	}
	// The signup response only echoes the core identity fields; the rest
	// of the snapshot comes from the submitted form.
	if res.StudentID == "" {
		res.StudentID = in.StudentID
	}
	if res.RollNumber == "" {
		res.RollNumber = in.RollNumber
	}
	if res.Batch == "" {
		res.Batch = in.Batch
	}
	if res.Branch == "" {
		res.Branch = in.Branch
	}
	if res.HostelType == "" {
		res.HostelType = in.HostelType
	}
	if res.RoomPreference == "" {
		res.RoomPreference = in.RoomPreference
	}
	if res.PhotoURL == "" {
		res.PhotoURL = in.PhotoURL
	}
	return &domain.Session{Token: res.Token, User: MapUser(res)}, nil
}

// Login authenticates and returns the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	res, err := decode[userDTO](body)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: res.Token, User: MapUser(res)}, nil
}

// === Rooms ===

func (c *Client) GetRooms(ctx context.Context) ([]domain.Room, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/rooms", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]roomDTO](body)
	if err != nil {
		return nil, err
	}
	return MapRooms(dtos), nil
}

func (c *Client) SaveRoom(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	status := "occupied"
	if in.Available {
		status = "available"
	}
	body, err := c.doRequest(ctx, http.MethodPost, "/api/rooms", roomRequest{
		RoomNumber:    in.Room,
		RoomType:      in.Type,
		Status:        status,
		PricePerNight: in.Price,
		Capacity:      in.Capacity,
	})
	if err != nil {
		return nil, err
	}
	dto, err := decode[roomDTO](body)
	if err != nil {
		return nil, err
	}
	room := MapRoom(dto)
	return &room, nil
}

func (c *Client) DeleteRoom(ctx context.Context, roomNumber string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/api/rooms/"+roomNumber, nil)
	return err
}

// === Notices ===

func (c *Client) GetNotices(ctx context.Context) ([]domain.Notice, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/notices", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]noticeDTO](body)
	if err != nil {
		return nil, err
	}
	return MapNotices(dtos), nil
}

func (c *Client) AddNotice(ctx context.Context, text string) (*domain.Notice, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/notices", noticeRequest{Text: text})
	if err != nil {
		return nil, err
	}
	dto, err := decode[noticeDTO](body)
	if err != nil {
		return nil, err
	}
	notice := MapNotice(dto)
	return &notice, nil
}

func (c *Client) DeleteNotice(ctx context.Context, id int64) error {
	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/notices/%d", id), nil)
	return err
}

// === Complaints ===

func (c *Client) GetComplaints(ctx context.Context) ([]domain.Complaint, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/complaints", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]complaintDTO](body)
	if err != nil {
		return nil, err
	}
	return MapComplaints(dtos), nil
}

func (c *Client) SubmitComplaint(ctx context.Context, in domain.ComplaintInput) (*domain.Complaint, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/complaints", complaintRequest{
		StudentID:   in.StudentID,
		Category:    in.Category,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	dto, err := decode[complaintDTO](body)
	if err != nil {
		return nil, err
	}
	complaint := MapComplaint(dto)
	return &complaint, nil
}

// === Payments ===

func (c *Client) GetPayments(ctx context.Context) ([]domain.Payment, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/payments", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]paymentDTO](body)
	if err != nil {
		return nil, err
	}
	return MapPayments(dtos), nil
}

func (c *Client) SubmitPayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/payments/submit", paymentRequest{
		TransactionID: in.TransactionID,
		StudentName:   in.StudentName,
		StudentID:     in.StudentID,
		Email:         in.Email,
		Phone:         in.Phone,
		FeeType:       in.FeeType,
		Amount:        in.Amount,
		Method:        in.Method,
		AdminUPIID:    in.AdminUPIID,
	})
	if err != nil {
		return nil, err
	}
	dto, err := decode[paymentDTO](body)
	if err != nil {
		return nil, err
	}
	payment := MapPayment(dto)
	return &payment, nil
}

// MarkPaymentPaid flags a submitted payment as paid by its transaction id.
func (c *Client) MarkPaymentPaid(ctx context.Context, transactionID string) (*domain.Payment, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/payments/mark-paid", paymentReviewRequest{
		TransactionID: transactionID,
	})
	if err != nil {
		return nil, err
	}
	dto, err := decode[paymentDTO](body)
	if err != nil {
		return nil, err
	}
	payment := MapPayment(dto)
	return &payment, nil
}

// === Bookings ===

func (c *Client) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/bookings", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]bookingDTO](body)
	if err != nil {
		return nil, err
	}
	return MapBookings(dtos), nil
}

func (c *Client) CreateBooking(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/bookings", bookingRequest{
		RoomID:     in.RoomID,
		RoomNumber: in.RoomNum,
		StudentID:  in.StudentID,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
	})
	if err != nil {
		return nil, err
	}
	dto, err := decode[bookingDTO](body)
	if err != nil {
		return nil, err
	}
	booking := MapBooking(dto)
	return &booking, nil
}

// === Profile ===

func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/me", nil)
	if err != nil {
		return nil, err
	}
	dto, err := decode[userDTO](body)
	if err != nil {
		return nil, err
	}
	user := MapUser(dto)
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodPut, "/api/me", profileUpdateRequest{
		Phone:          in.Phone,
		RoomPreference: in.RoomPreference,
		PhotoURL:       in.PhotoURL,
	})
	if err != nil {
		return nil, err
	}
	dto, err := decode[userDTO](body)
	if err != nil {
		return nil, err
	}
	user := MapUser(dto)
	return &user, nil
}

func (c *Client) GetMyBookings(ctx context.Context) ([]domain.Booking, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/me/bookings", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]bookingDTO](body)
	if err != nil {
		return nil, err
	}
	return MapBookings(dtos), nil
}

// === Admin ===

func (c *Client) AdminGetStudents(ctx context.Context) ([]domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/admin/students", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]userDTO](body)
	if err != nil {
		return nil, err
	}
	return MapUsers(dtos), nil
}

func (c *Client) AdminGetStudent(ctx context.Context, id int64) (*domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/admin/students/%d", id), nil)
	if err != nil {
		return nil, err
	}
	dto, err := decode[userDTO](body)
	if err != nil {
		return nil, err
	}
	user := MapUser(dto)
	return &user, nil
}

func (c *Client) AdminGetPayments(ctx context.Context) ([]domain.Payment, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/admin/payments", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decode[[]paymentDTO](body)
	if err != nil {
		return nil, err
	}
	return MapPayments(dtos), nil
}

func (c *Client) AdminConfirmPayment(ctx context.Context, in domain.PaymentReview) (*domain.Payment, error) {
	return c.reviewPayment(ctx, "/api/admin/payments/confirm", in)
}

func (c *Client) AdminRejectPayment(ctx context.Context, in domain.PaymentReview) (*domain.Payment, error) {
	return c.reviewPayment(ctx, "/api/admin/payments/reject", in)
}

func (c *Client) reviewPayment(ctx context.Context, path string, in domain.PaymentReview) (*domain.Payment, error) {
	body, err := c.doRequest(ctx, http.MethodPost, path, paymentReviewRequest{
		PaymentID:     in.PaymentID,
		TransactionID: in.TransactionID,
	})
	if err != nil {
		return nil, err
	}
	dto, err := decode[paymentDTO](body)
	if err != nil {
		return nil, err
	}
	payment := MapPayment(dto)
	return &payment, nil
}

func (c *Client) AdminGetStats(ctx context.Context) (*domain.Stats, error) {
	return c.fetchStats(ctx, "/api/admin/stats")
}

// === Fees and stats ===

func (c *Client) GetFees(ctx context.Context) (*domain.FeeSchedule, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/fees", nil)
	if err != nil {
		return nil, err
	}
	dto, err := decode[feesDTO](body)
	if err != nil {
		return nil, err
	}
	fees := MapFees(dto)
	return &fees, nil
}

func (c *Client) SetFees(ctx context.Context, fees domain.FeeSchedule) error {
	_, err := c.doRequest(ctx, http.MethodPut, "/api/fees", feesDTO{
		Mess:   fees.Mess,
		Single: fees.Single,
		Triple: fees.Triple,
	})
	return err
}

func (c *Client) GetStats(ctx context.Context) (*domain.Stats, error) {
	return c.fetchStats(ctx, "/api/stats")
}

func (c *Client) fetchStats(ctx context.Context, path string) (*domain.Stats, error) {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	dto, err := decode[statsDTO](body)
	if err != nil {
		return nil, err
	}
	stats := MapStats(dto)
	return &stats, nil
}
