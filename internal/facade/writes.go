package facade

import (
	"context"

	"github.com/gechostel/hosteldesk/internal/domain"
)

// Write path. Every mutation asks the monitor first and fails with an
// offline error before any network attempt when the backend is
// unreachable; server rejections are propagated verbatim. In neither
// failure case is anything persisted locally: a write is either
// confirmed by the server or it did not happen.

// SubmitComplaint files a complaint and returns the server-assigned
// ticket.
func (f *Facade) SubmitComplaint(ctx context.Context, in domain.ComplaintInput) (*domain.Complaint, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	complaint, err := f.backend.SubmitComplaint(ctx, in)
	if err != nil {
		return nil, err
	}
	f.logger.Info("complaint submitted", "ticket", complaint.Ticket, "category", complaint.Category)
	return complaint, nil
}

// SubmitPayment submits a fee payment for admin review. A transaction id
// is generated client-side when the caller did not supply one, and the
// method defaults to UPI.
func (f *Facade) SubmitPayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	if in.TransactionID == "" {
		in.TransactionID = GenerateTransactionID()
	}
	if in.Method == "" {
		in.Method = "UPI"
	}
	payment, err := f.backend.SubmitPayment(ctx, in)
	if err != nil {
		return nil, err
	}
	f.logger.Info("payment submitted", "transactionId", payment.TransactionID, "amount", payment.Amount)
	return payment, nil
}

// MarkPaymentPaid flags an existing payment submission as paid.
func (f *Facade) MarkPaymentPaid(ctx context.Context, transactionID string) (*domain.Payment, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	payment, err := f.backend.MarkPaymentPaid(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	f.logger.Info("payment marked paid", "transactionId", transactionID)
	return payment, nil
}

// CreateBooking books a room for the current user.
func (f *Facade) CreateBooking(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	return f.backend.CreateBooking(ctx, in)
}

// SaveRoom creates or updates a room (admin only).
func (f *Facade) SaveRoom(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	return f.backend.SaveRoom(ctx, in)
}

// DeleteRoom removes a room by its number (admin only).
func (f *Facade) DeleteRoom(ctx context.Context, roomNumber string) error {
	if err := f.requireBackend(ctx); err != nil {
		return err
	}
	return f.backend.DeleteRoom(ctx, roomNumber)
}

// AddNotice posts a notice (admin only).
func (f *Facade) AddNotice(ctx context.Context, text string) (*domain.Notice, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	return f.backend.AddNotice(ctx, text)
}

// DeleteNotice removes a notice (admin only).
func (f *Facade) DeleteNotice(ctx context.Context, id int64) error {
	if err := f.requireBackend(ctx); err != nil {
		return err
	}
	return f.backend.DeleteNotice(ctx, id)
}

// SetFees updates the fee schedule (admin only). The cached schedule is
// refreshed only after the server confirmed the write.
func (f *Facade) SetFees(ctx context.Context, fees domain.FeeSchedule) error {
	if err := f.requireBackend(ctx); err != nil {
		return err
	}
	if err := f.backend.SetFees(ctx, fees); err != nil {
		return err
	}
	if err := f.cache.SaveFees(fees); err != nil {
		f.logger.Warn("failed to cache collection", "collection", "fees", "error", err)
	}
	return nil
}

// AdminConfirmPayment marks a payment confirmed (admin only).
func (f *Facade) AdminConfirmPayment(ctx context.Context, in domain.PaymentReview) (*domain.Payment, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	payment, err := f.backend.AdminConfirmPayment(ctx, in)
	if err != nil {
		return nil, err
	}
	f.logger.Info("payment confirmed", "transactionId", payment.TransactionID)
	return payment, nil
}

// AdminRejectPayment marks a payment rejected (admin only).
func (f *Facade) AdminRejectPayment(ctx context.Context, in domain.PaymentReview) (*domain.Payment, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	payment, err := f.backend.AdminRejectPayment(ctx, in)
	if err != nil {
		return nil, err
	}
	f.logger.Info("payment rejected", "transactionId", payment.TransactionID)
	return payment, nil
}
