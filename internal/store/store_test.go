package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/store"
)

func newMemoryStore(t *testing.T) *store.CacheStore {
	t.Helper()
	s, err := store.New("", "")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testSession() *domain.Session {
	return &domain.Session{
		Token: "tok-123",
		User: domain.User{
			ID:       7,
			FullName: "Asha Nair",
			Email:    "asha@example.com",
			Role:     domain.RoleStudent,
		},
	}
}

func TestSessionSlotEmpty(t *testing.T) {
	s := newMemoryStore(t)

	session, ok := s.Session()
	assert.False(t, ok)
	assert.Nil(t, session)
}

func TestSessionSaveAndClear(t *testing.T) {
	s := newMemoryStore(t)

	require.NoError(t, s.SaveSession(testSession()))

	got, ok := s.Session()
	require.True(t, ok)
	// Token and user snapshot live in one slot: both present together
	assert.Equal(t, "tok-123", got.Token)
	assert.Equal(t, "asha@example.com", got.User.Email)

	require.NoError(t, s.ClearSession())

	// ...and both gone together
	got, ok = s.Session()
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSessionWithoutTokenIsNotASession(t *testing.T) {
	s := newMemoryStore(t)

	require.NoError(t, s.SaveSession(&domain.Session{User: domain.User{ID: 1}}))

	_, ok := s.Session()
	assert.False(t, ok)
}

func TestCollectionRoundTrip(t *testing.T) {
	s := newMemoryStore(t)

	_, ok := s.Rooms()
	assert.False(t, ok)

	rooms := []domain.Room{
		{ID: 1, Floor: 1, Room: "101", Type: "single", Available: true, Capacity: 1},
		{ID: 2, Floor: 1, Room: "103", Type: "triple", Available: false, Capacity: 3},
	}
	require.NoError(t, s.SaveRooms(rooms))

	got, ok := s.Rooms()
	require.True(t, ok)
	assert.Equal(t, rooms, got)
}

func TestFeesRoundTrip(t *testing.T) {
	s := newMemoryStore(t)

	_, ok := s.Fees()
	assert.False(t, ok)

	fees := domain.FeeSchedule{Mess: "₹ 4,000 / month", Single: "₹ 20,000 / year", Triple: "₹ 16,000 / year"}
	require.NoError(t, s.SaveFees(fees))

	got, ok := s.Fees()
	require.True(t, ok)
	assert.Equal(t, fees, *got)
}

func TestInvalidateAll(t *testing.T) {
	s := newMemoryStore(t)

	require.NoError(t, s.SaveSession(testSession()))
	require.NoError(t, s.SaveNotices([]domain.Notice{{ID: 1, Text: "Mess closed on Friday"}}))

	s.InvalidateAll()

	_, ok := s.Session()
	assert.False(t, ok)
	_, ok = s.Notices()
	assert.False(t, ok)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := store.New(dir, "http://localhost:5000")
	require.NoError(t, err)

	require.NoError(t, s.SaveSession(testSession()))
	require.NoError(t, s.SaveBookings([]domain.Booking{{ID: 1, UserID: 7, RoomNumber: "101"}}))
	require.NoError(t, s.Close())

	reopened, err := store.New(dir, "http://localhost:5000")
	require.NoError(t, err)
	defer reopened.Close()

	session, ok := reopened.Session()
	require.True(t, ok)
	assert.Equal(t, "tok-123", session.Token)

	bookings, ok := reopened.Bookings()
	require.True(t, ok)
	require.Len(t, bookings, 1)
	assert.Equal(t, "101", bookings[0].RoomNumber)
}

func TestServersDoNotShareState(t *testing.T) {
	dir := t.TempDir()

	s1, err := store.New(dir, "http://hostel-a:5000")
	require.NoError(t, err)
	require.NoError(t, s1.SaveNotices([]domain.Notice{{ID: 1, Text: "only on A"}}))
	require.NoError(t, s1.Close())

	s2, err := store.New(dir, "http://hostel-b:5000")
	require.NoError(t, err)
	defer s2.Close()

	_, ok := s2.Notices()
	assert.False(t, ok)
}
