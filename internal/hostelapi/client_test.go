package hostelapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gechostel/hosteldesk/internal/adapter"
	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/hostelapi"
)

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"affirmative", `{"ok":true}`, true},
		{"non-affirmative", `{"ok":false}`, false},
		{"malformed", `not json`, false},
		{"empty object", `{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
			err := client.CheckHealth(context.Background())
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTransportErrorIsOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Nothing listening

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
	_, err := client.GetRooms(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsOffline(err))
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer srv.Close()

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
	_, err := client.Login(context.Background(), "x@example.com", "wrong")

	require.Error(t, err)
	assert.False(t, domain.IsOffline(err))
	assert.ErrorIs(t, err, domain.ErrAuthFailed)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestConflictClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Email already registered"}`))
	}))
	defer srv.Close()

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
	_, err := client.Signup(context.Background(), domain.SignupInput{Email: "dup@example.com"})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginReturnsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"id":5,"full_name":"Asha Nair","email":"asha@example.com","role":"student","token":"tok-abc"}`))
	}))
	defer srv.Close()

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
	session, err := client.Login(context.Background(), "asha@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", session.Token)
	assert.Equal(t, "Asha Nair", session.User.FullName)
	assert.Equal(t, domain.RoleStudent, session.User.Role)
}

func TestSignupBackfillsSnapshotFromForm(t *testing.T) {
	// The signup response echoes only the core identity fields
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":9,"full_name":"Ravi Kumar","email":"ravi@example.com","token":"tok-new"}`))
	}))
	defer srv.Close()

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
	session, err := client.Signup(context.Background(), domain.SignupInput{
		FullName:       "Ravi Kumar",
		Email:          "ravi@example.com",
		Password:       "secret",
		StudentID:      "GEC2023045",
		Batch:          "2023",
		Branch:         "CSE",
		RoomPreference: "single",
	})

	require.NoError(t, err)
	assert.Equal(t, "GEC2023045", session.User.StudentID)
	assert.Equal(t, "2023", session.User.Batch)
	assert.Equal(t, "CSE", session.User.Branch)
	assert.Equal(t, "single", session.User.RoomPreference)
}

func TestBearerTokenSent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())

	_, err := client.GetRooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	client.SetToken("tok-abc")
	_, err = client.GetRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestGetRoomsMapsWireShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"room_number":"103","room_type":"triple","status":"available","capacity":3},
			{"id":2,"room_number":"204","room_type":"single","status":"occupied","capacity":1}
		]`))
	}))
	defer srv.Close()

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
	rooms, err := client.GetRooms(context.Background())

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, domain.Room{ID: 1, Floor: 1, Room: "103", Type: "triple", Available: true, Capacity: 3}, rooms[0])
	assert.Equal(t, domain.Room{ID: 2, Floor: 2, Room: "204", Type: "single", Available: false, Capacity: 1}, rooms[1])
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := hostelapi.NewClient(srv.URL, adapter.NullLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetNotices(ctx)
	require.Error(t, err)
	// A cancelled round trip classifies as connectivity, not a server rejection
	assert.True(t, domain.IsOffline(err) || errors.Is(err, context.Canceled))
}
