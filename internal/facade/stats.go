package facade

import (
	"context"

	"github.com/gechostel/hosteldesk/internal/domain"
)

// GetStats returns the home page aggregate counts. Online, the server
// computes them; offline they are derived from whatever collections are
// cached, which may diverge from server truth.
func (f *Facade) GetStats(ctx context.Context) domain.Stats {
	if DecideSource(f.monitor.IsAvailable(ctx)) == SourceRemote {
		stats, err := f.backend.GetStats(ctx)
		if err == nil {
			return *stats
		}
		f.logger.Warn("remote stats failed, deriving locally", "error", err)
	}
	return f.deriveStats(ctx)
}

// AdminGetStats returns the admin dashboard counts with the same
// online/offline split as GetStats.
func (f *Facade) AdminGetStats(ctx context.Context) domain.Stats {
	if DecideSource(f.monitor.IsAvailable(ctx)) == SourceRemote {
		stats, err := f.backend.AdminGetStats(ctx)
		if err == nil {
			return *stats
		}
		f.logger.Warn("remote admin stats failed, deriving locally", "error", err)
	}
	return f.deriveStats(ctx)
}

// deriveStats counts over the cached collections: available rooms from
// the cached room list, students from the cached admin listing, notices
// from the cached notices. The hostel has four floors.
func (f *Facade) deriveStats(ctx context.Context) domain.Stats {
	rooms := f.GetRooms(ctx)
	notices := f.GetNotices(ctx)
	students, _ := f.cache.AdminStudents()

	available := 0
	for _, r := range rooms {
		if r.Available {
			available++
		}
	}

	return domain.Stats{
		AvailableRooms: available,
		Students:       len(students),
		Notices:        len(notices),
		Floors:         4,
	}
}
