package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gechostel/hosteldesk/internal/domain"
)

// Messages

type tabLoadedMsg struct {
	tab  Tab
	rows []string
}

type statsLoadedMsg struct {
	stats  domain.Stats
	online bool
}

type profileLoadedMsg struct {
	user *domain.User
	fees domain.FeeSchedule
}

type spinnerTickMsg struct{}

// Commands

// loadTab fetches the active tab's collection through the façade. The
// façade degrades reads to cache, so these commands never fail.
func (m *Model) loadTab(tab Tab) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		switch tab {
		case TabRooms:
			return tabLoadedMsg{tab: tab, rows: roomRows(m.api.GetRooms(ctx))}
		case TabNotices:
			return tabLoadedMsg{tab: tab, rows: noticeRows(m.api.GetNotices(ctx))}
		case TabBookings:
			return tabLoadedMsg{tab: tab, rows: bookingRows(m.api.GetMyBookings(ctx))}
		case TabComplaints:
			return tabLoadedMsg{tab: tab, rows: complaintRows(m.api.GetComplaints(ctx))}
		case TabPayments:
			return tabLoadedMsg{tab: tab, rows: paymentRows(m.api.GetPayments(ctx))}
		case TabStudents:
			return tabLoadedMsg{tab: tab, rows: studentRows(m.api.AdminGetStudents(ctx))}
		case TabAdminPayments:
			return tabLoadedMsg{tab: tab, rows: paymentRows(m.api.AdminGetPayments(ctx))}
		case TabProfile:
			return profileLoadedMsg{user: m.api.GetProfile(ctx), fees: m.api.GetFees(ctx)}
		}
		return nil
	}
}

// loadStats fetches the header counts and the reachability badge
func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		online := m.api.IsOnline(ctx)
		var stats domain.Stats
		if m.isAdmin {
			stats = m.api.AdminGetStats(ctx)
		} else {
			stats = m.api.GetStats(ctx)
		}
		return statsLoadedMsg{stats: stats, online: online}
	}
}

// reindexSearch rebuilds the fuzzy search index in the background
func (m *Model) reindexSearch() tea.Cmd {
	return func() tea.Msg {
		m.searchSvc.Reindex(context.Background())
		return nil
	}
}

// spinnerTick drives the loading animation
func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}
