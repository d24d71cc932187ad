package facade

import (
	"context"
	"log/slog"

	"github.com/gechostel/hosteldesk/internal/domain"
)

// Read path. Each getter runs the same two-stage pipeline: decide the
// source from the reachability determination, then execute against it.
// A remote success overwrites the matching cached collection before
// returning; a remote failure of any kind degrades to the cached value,
// then to the documented default. Reads never fail for connectivity.

// fetchCollection executes the read pipeline for one named collection.
func fetchCollection[T any](
	ctx context.Context,
	logger *slog.Logger,
	name string,
	source Source,
	remote func(context.Context) ([]T, error),
	cached func() ([]T, bool),
	save func([]T) error,
	fallback func() []T,
) []T {
	if source == SourceRemote {
		items, err := remote(ctx)
		if err == nil {
			if err := save(items); err != nil {
				logger.Warn("failed to cache collection", "collection", name, "error", err)
			}
			return items
		}
		logger.Warn("remote read failed, serving cache", "collection", name, "error", err)
	}

	if items, ok := cached(); ok {
		return items
	}
	return fallback()
}

func emptyFallback[T any]() []T { return nil }

// GetRooms returns the room inventory.
func (f *Facade) GetRooms(ctx context.Context) []domain.Room {
	return fetchCollection(ctx, f.logger, "rooms", DecideSource(f.monitor.IsAvailable(ctx)),
		f.backend.GetRooms, f.cache.Rooms, f.cache.SaveRooms, domain.DefaultRooms)
}

// GetNotices returns the notice board entries.
func (f *Facade) GetNotices(ctx context.Context) []domain.Notice {
	return fetchCollection(ctx, f.logger, "notices", DecideSource(f.monitor.IsAvailable(ctx)),
		f.backend.GetNotices, f.cache.Notices, f.cache.SaveNotices, domain.DefaultNotices)
}

// GetComplaints returns the caller's visible complaints.
func (f *Facade) GetComplaints(ctx context.Context) []domain.Complaint {
	return fetchCollection(ctx, f.logger, "complaints", DecideSource(f.monitor.IsAvailable(ctx)),
		f.backend.GetComplaints, f.cache.Complaints, f.cache.SaveComplaints, emptyFallback[domain.Complaint])
}

// GetPayments returns the caller's visible payments.
func (f *Facade) GetPayments(ctx context.Context) []domain.Payment {
	return fetchCollection(ctx, f.logger, "payments", DecideSource(f.monitor.IsAvailable(ctx)),
		f.backend.GetPayments, f.cache.Payments, f.cache.SavePayments, emptyFallback[domain.Payment])
}

// GetBookings returns all bookings visible to the caller.
func (f *Facade) GetBookings(ctx context.Context) []domain.Booking {
	return fetchCollection(ctx, f.logger, "bookings", DecideSource(f.monitor.IsAvailable(ctx)),
		f.backend.GetBookings, f.cache.Bookings, f.cache.SaveBookings, emptyFallback[domain.Booking])
}

// GetMyBookings returns the current user's bookings. Offline, the cached
// bookings collection is filtered down to the current user.
func (f *Facade) GetMyBookings(ctx context.Context) []domain.Booking {
	if DecideSource(f.monitor.IsAvailable(ctx)) == SourceRemote {
		bookings, err := f.backend.GetMyBookings(ctx)
		if err == nil {
			return bookings
		}
		f.logger.Warn("remote read failed, serving cache", "collection", "my_bookings", "error", err)
	}

	user := f.CurrentUser()
	if user == nil {
		return nil
	}
	cached, _ := f.cache.Bookings()
	var mine []domain.Booking
	for _, b := range cached {
		if b.UserID == user.ID || (b.StudentID != "" && b.StudentID == user.StudentID) {
			mine = append(mine, b)
		}
	}
	return mine
}

// AdminGetStudents returns all student records (admin view).
func (f *Facade) AdminGetStudents(ctx context.Context) []domain.User {
	return fetchCollection(ctx, f.logger, "admin_students", DecideSource(f.monitor.IsAvailable(ctx)),
		f.backend.AdminGetStudents, f.cache.AdminStudents, f.cache.SaveAdminStudents, emptyFallback[domain.User])
}

// AdminGetStudent returns one student record, scanning the cached
// listing when offline. Returns nil when the student is unknown.
func (f *Facade) AdminGetStudent(ctx context.Context, id int64) *domain.User {
	if DecideSource(f.monitor.IsAvailable(ctx)) == SourceRemote {
		student, err := f.backend.AdminGetStudent(ctx, id)
		if err == nil {
			return student
		}
		f.logger.Warn("remote read failed, serving cache", "collection", "admin_student", "id", id, "error", err)
	}

	students, _ := f.cache.AdminStudents()
	for i := range students {
		if students[i].ID == id {
			return &students[i]
		}
	}
	return nil
}

// AdminGetPayments returns all payment submissions (admin view).
func (f *Facade) AdminGetPayments(ctx context.Context) []domain.Payment {
	return fetchCollection(ctx, f.logger, "admin_payments", DecideSource(f.monitor.IsAvailable(ctx)),
		f.backend.AdminGetPayments, f.cache.AdminPayments, f.cache.SaveAdminPayments, emptyFallback[domain.Payment])
}

// GetFees returns the fee schedule.
func (f *Facade) GetFees(ctx context.Context) domain.FeeSchedule {
	if DecideSource(f.monitor.IsAvailable(ctx)) == SourceRemote {
		fees, err := f.backend.GetFees(ctx)
		if err == nil {
			if err := f.cache.SaveFees(*fees); err != nil {
				f.logger.Warn("failed to cache collection", "collection", "fees", "error", err)
			}
			return *fees
		}
		f.logger.Warn("remote read failed, serving cache", "collection", "fees", "error", err)
	}

	if fees, ok := f.cache.Fees(); ok {
		return *fees
	}
	return domain.DefaultFees()
}
