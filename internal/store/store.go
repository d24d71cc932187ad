package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gechostel/hosteldesk/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketSession     = []byte("session")
	bucketCollections = []byte("collections")
)

// Collection keys within bucketCollections
const (
	keyRooms         = "rooms"
	keyNotices       = "notices"
	keyComplaints    = "complaints"
	keyPayments      = "payments"
	keyBookings      = "bookings"
	keyAdminStudents = "admin_students"
	keyAdminPayments = "admin_payments"
	keyFees          = "fees"
)

// sessionKey is the single durable slot for the current session
const sessionKey = "current"

// CacheStore implements domain.CacheStore using BoltDB. Collections hold
// last-known-good copies of server listings and are only written after a
// successful remote read; the session slot holds token and user snapshot
// as one value, so the two can never be persisted separately.
type CacheStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// New opens the cache under baseCacheDir, keyed by server URL so two
// backends never share cached state. An empty baseCacheDir yields a
// memory-only store (used in tests).
func New(baseCacheDir, serverURL string) (*CacheStore, error) {
	if baseCacheDir == "" {
		// Memory-only mode (no persistence)
		return &CacheStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseCacheDir
	if serverURL != "" {
		dir = filepath.Join(baseCacheDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "hosteldesk.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSession, bucketCollections} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CacheStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *CacheStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CacheStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	// Read from BoltDB
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CacheStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	// Update memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *CacheStore) delete(bucket []byte, key string) error {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			return b.Delete([]byte(key))
		}
		return nil
	})
}

// === Session slot ===

// Session returns the persisted session, if any.
func (s *CacheStore) Session() (*domain.Session, bool) {
	var session domain.Session
	if !s.get(bucketSession, sessionKey, &session) {
		return nil, false
	}
	if session.Token == "" {
		return nil, false
	}
	return &session, true
}

// SaveSession persists token and user snapshot as one value in one
// transaction; a partial write can never leave one without the other.
func (s *CacheStore) SaveSession(session *domain.Session) error {
	return s.set(bucketSession, sessionKey, session)
}

// ClearSession removes token and user snapshot together.
func (s *CacheStore) ClearSession() error {
	return s.delete(bucketSession, sessionKey)
}

// === Collections ===

func (s *CacheStore) Rooms() ([]domain.Room, bool) {
	var rooms []domain.Room
	ok := s.get(bucketCollections, keyRooms, &rooms)
	return rooms, ok
}

func (s *CacheStore) SaveRooms(rooms []domain.Room) error {
	return s.set(bucketCollections, keyRooms, rooms)
}

func (s *CacheStore) Notices() ([]domain.Notice, bool) {
	var notices []domain.Notice
	ok := s.get(bucketCollections, keyNotices, &notices)
	return notices, ok
}

func (s *CacheStore) SaveNotices(notices []domain.Notice) error {
	return s.set(bucketCollections, keyNotices, notices)
}

func (s *CacheStore) Complaints() ([]domain.Complaint, bool) {
	var complaints []domain.Complaint
	ok := s.get(bucketCollections, keyComplaints, &complaints)
	return complaints, ok
}

func (s *CacheStore) SaveComplaints(complaints []domain.Complaint) error {
	return s.set(bucketCollections, keyComplaints, complaints)
}

func (s *CacheStore) Payments() ([]domain.Payment, bool) {
	var payments []domain.Payment
	ok := s.get(bucketCollections, keyPayments, &payments)
	return payments, ok
}

func (s *CacheStore) SavePayments(payments []domain.Payment) error {
	return s.set(bucketCollections, keyPayments, payments)
}

func (s *CacheStore) Bookings() ([]domain.Booking, bool) {
	var bookings []domain.Booking
	ok := s.get(bucketCollections, keyBookings, &bookings)
	return bookings, ok
}

func (s *CacheStore) SaveBookings(bookings []domain.Booking) error {
	return s.set(bucketCollections, keyBookings, bookings)
}

func (s *CacheStore) AdminStudents() ([]domain.User, bool) {
	var students []domain.User
	ok := s.get(bucketCollections, keyAdminStudents, &students)
	return students, ok
}

func (s *CacheStore) SaveAdminStudents(students []domain.User) error {
	return s.set(bucketCollections, keyAdminStudents, students)
}

func (s *CacheStore) AdminPayments() ([]domain.Payment, bool) {
	var payments []domain.Payment
	ok := s.get(bucketCollections, keyAdminPayments, &payments)
	return payments, ok
}

func (s *CacheStore) SaveAdminPayments(payments []domain.Payment) error {
	return s.set(bucketCollections, keyAdminPayments, payments)
}

func (s *CacheStore) Fees() (*domain.FeeSchedule, bool) {
	var fees domain.FeeSchedule
	if !s.get(bucketCollections, keyFees, &fees) {
		return nil, false
	}
	return &fees, true
}

func (s *CacheStore) SaveFees(fees domain.FeeSchedule) error {
	return s.set(bucketCollections, keyFees, fees)
}

// InvalidateAll wipes every cached collection and the session slot.
func (s *CacheStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSession, bucketCollections} {
			b := tx.Bucket(bucket)
			if b == nil {
				continue
			}
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if err := b.Delete(k); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
