package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gechostel/hosteldesk/internal/adapter"
	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/facade"
	"github.com/gechostel/hosteldesk/internal/hostelapi"
	"github.com/gechostel/hosteldesk/internal/monitor"
	"github.com/gechostel/hosteldesk/internal/service"
	"github.com/gechostel/hosteldesk/internal/store"
)

func newTestFacade(t *testing.T, admin bool) *facade.Facade {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			fmt.Fprint(w, `{"ok":true}`)
		case "/api/rooms":
			fmt.Fprint(w, `[
				{"id":1,"room_number":"101","room_type":"single","status":"available","capacity":1},
				{"id":2,"room_number":"305","room_type":"triple","status":"occupied","capacity":3}
			]`)
		case "/api/notices":
			fmt.Fprint(w, `[{"id":1,"text":"Mess closed on public holiday"}]`)
		case "/api/admin/students":
			fmt.Fprint(w, `[{"id":7,"full_name":"Asha Nair","email":"asha@example.com","student_id":"GEC2023001"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"not found"}`)
		}
	}))
	t.Cleanup(srv.Close)

	logger := adapter.NullLogger()
	cache, err := store.New("", "")
	require.NoError(t, err)

	if admin {
		require.NoError(t, cache.SaveSession(&domain.Session{
			Token: "tok-admin",
			User:  domain.User{ID: 1, FullName: "Warden", Role: domain.RoleAdmin},
		}))
	}

	client := hostelapi.NewClient(srv.URL, logger)
	api := facade.New(client, cache, monitor.New(client, logger), logger)
	t.Cleanup(func() { api.Close() })

	return api
}

func TestReindexAndSearch(t *testing.T) {
	api := newTestFacade(t, false)
	svc := service.NewSearchService(api, adapter.NullLogger())

	svc.Reindex(context.Background())
	// 2 rooms + 1 notice; students are admin-only
	assert.Equal(t, 3, svc.Count())

	results := svc.Search("room 305")
	require.NotEmpty(t, results)
	assert.Equal(t, service.KindRoom, results[0].Kind)
	require.NotNil(t, results[0].Room)
	assert.Equal(t, "305", results[0].Room.Room)
}

func TestSearchMatchesNotices(t *testing.T) {
	api := newTestFacade(t, false)
	svc := service.NewSearchService(api, adapter.NullLogger())
	svc.Reindex(context.Background())

	results := svc.Search("mess closed")
	require.NotEmpty(t, results)
	assert.Equal(t, service.KindNotice, results[0].Kind)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	api := newTestFacade(t, false)
	svc := service.NewSearchService(api, adapter.NullLogger())
	svc.Reindex(context.Background())

	assert.NotEmpty(t, svc.Search("MESS"))
	assert.NotEmpty(t, svc.Search("mess"))
}

func TestEmptyQueryReturnsNothing(t *testing.T) {
	api := newTestFacade(t, false)
	svc := service.NewSearchService(api, adapter.NullLogger())
	svc.Reindex(context.Background())

	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("   "))
}

func TestStudentsIndexedForAdminsOnly(t *testing.T) {
	student := service.NewSearchService(newTestFacade(t, false), adapter.NullLogger())
	student.Reindex(context.Background())
	assert.Empty(t, student.Search("asha"))

	admin := service.NewSearchService(newTestFacade(t, true), adapter.NullLogger())
	admin.Reindex(context.Background())

	results := admin.Search("asha")
	require.NotEmpty(t, results)
	assert.Equal(t, service.KindStudent, results[0].Kind)
	require.NotNil(t, results[0].User)
	assert.Equal(t, "GEC2023001", results[0].User.StudentID)
}
