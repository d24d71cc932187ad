package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/facade"
)

// EntryKind identifies what a search entry points at
type EntryKind string

const (
	KindRoom    EntryKind = "room"
	KindNotice  EntryKind = "notice"
	KindStudent EntryKind = "student"
)

// Entry is one searchable record in the index
type Entry struct {
	Kind   EntryKind
	Label  string // Display label, also the match target
	Room   *domain.Room
	Notice *domain.Notice
	User   *domain.User
}

// Result is a ranked search hit
type Result struct {
	Entry
	Distance int // Rank distance (lower is better)
}

// SearchService provides fuzzy search across the collections the façade
// has loaded: rooms, notices, and (for admins) students. The index is
// rebuilt from façade reads, so offline it reflects the cached state.
type SearchService struct {
	api    *facade.Facade
	logger *slog.Logger

	mu      sync.RWMutex
	entries []Entry
	labels  []string // Pre-computed lowercase labels
}

// NewSearchService creates a new search service
func NewSearchService(api *facade.Facade, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{api: api, logger: logger}
}

// Reindex rebuilds the index from the façade's current view. Student
// records are indexed only when the session has the admin role.
func (s *SearchService) Reindex(ctx context.Context) {
	var entries []Entry

	rooms := s.api.GetRooms(ctx)
	for i := range rooms {
		r := &rooms[i]
		entries = append(entries, Entry{
			Kind:  KindRoom,
			Label: fmt.Sprintf("Room %s (%s, floor %d)", r.Room, r.Type, r.Floor),
			Room:  r,
		})
	}

	notices := s.api.GetNotices(ctx)
	for i := range notices {
		n := &notices[i]
		entries = append(entries, Entry{Kind: KindNotice, Label: n.Text, Notice: n})
	}

	if user := s.api.CurrentUser(); user != nil && user.Role == domain.RoleAdmin {
		students := s.api.AdminGetStudents(ctx)
		for i := range students {
			u := &students[i]
			entries = append(entries, Entry{
				Kind:  KindStudent,
				Label: fmt.Sprintf("%s (%s)", u.FullName, u.StudentID),
				User:  u,
			})
		}
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = strings.ToLower(e.Label)
	}

	s.mu.Lock()
	s.entries = entries
	s.labels = labels
	s.mu.Unlock()

	s.logger.Debug("search index rebuilt", "entries", len(entries))
}

// Search performs fuzzy matching against the index, best matches first.
func (s *SearchService) Search(query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := fuzzy.RankFindFold(query, s.labels)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		results = append(results, Result{
			Entry:    s.entries[match.OriginalIndex],
			Distance: match.Distance,
		})
	}
	return results
}

// Count returns the number of indexed entries
func (s *SearchService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
