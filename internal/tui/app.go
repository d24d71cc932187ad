package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/facade"
	"github.com/gechostel/hosteldesk/internal/service"
	"github.com/gechostel/hosteldesk/internal/tui/components"
	"github.com/gechostel/hosteldesk/internal/tui/styles"
)

// Tab identifies one dashboard surface
type Tab int

const (
	TabRooms Tab = iota
	TabNotices
	TabBookings
	TabComplaints
	TabPayments
	TabProfile
	TabStudents
	TabAdminPayments
)

func (t Tab) title() string {
	switch t {
	case TabRooms:
		return "Rooms"
	case TabNotices:
		return "Notices"
	case TabBookings:
		return "My Bookings"
	case TabComplaints:
		return "Complaints"
	case TabPayments:
		return "Payments"
	case TabProfile:
		return "Profile"
	case TabStudents:
		return "Students"
	case TabAdminPayments:
		return "All Payments"
	}
	return ""
}

// Model is the main Bubble Tea model for the application
type Model struct {
	api       *facade.Facade
	searchSvc *service.SearchService
	keys      KeyMap

	tabs    []Tab
	active  int
	lists   map[Tab]*components.List
	search  omnibar
	isAdmin bool

	stats   domain.Stats
	online  bool
	profile *domain.User
	fees    domain.FeeSchedule

	width  int
	height int
	ready  bool
}

// NewModel builds the dashboard for the logged-in user. Admin accounts
// get the admin tabs in addition to the student surfaces.
func NewModel(api *facade.Facade, searchSvc *service.SearchService) Model {
	user := api.CurrentUser()
	isAdmin := user != nil && user.Role == domain.RoleAdmin

	tabs := []Tab{TabRooms, TabNotices, TabBookings, TabComplaints, TabPayments, TabProfile}
	if isAdmin {
		tabs = append(tabs, TabStudents, TabAdminPayments)
	}

	lists := make(map[Tab]*components.List, len(tabs))
	for _, t := range tabs {
		lists[t] = components.NewList(t.title())
	}

	return Model{
		api:       api,
		searchSvc: searchSvc,
		keys:      DefaultKeyMap(),
		tabs:      tabs,
		lists:     lists,
		search:    newOmnibar(),
		isAdmin:   isAdmin,
	}
}

func (m Model) Init() tea.Cmd {
	// Connectivity may have changed since the last run
	m.api.ForceRecheck()
	return tea.Batch(
		m.loadStats(),
		m.loadTab(m.currentTab()),
		m.reindexSearch(),
		spinnerTick(),
	)
}

func (m Model) currentTab() Tab {
	return m.tabs[m.active]
}

func (m Model) currentList() *components.List {
	return m.lists[m.currentTab()]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		for _, l := range m.lists {
			l.SetSize(msg.Width, msg.Height-4)
		}
		return m, nil

	case spinnerTickMsg:
		m.currentList().Tick()
		return m, spinnerTick()

	case tabLoadedMsg:
		m.lists[msg.tab].SetRows(msg.rows)
		return m, nil

	case statsLoadedMsg:
		m.stats = msg.stats
		m.online = msg.online
		return m, nil

	case profileLoadedMsg:
		m.profile = msg.user
		m.fees = msg.fees
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.currentList()

	if m.search.active {
		// Only arrow keys move the cursor here; letters belong to the query
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.search.close()
			return m, nil
		case msg.Type == tea.KeyUp:
			m.search.cursorUp()
			return m, nil
		case msg.Type == tea.KeyDown:
			m.search.cursorDown()
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			res := m.search.selected()
			m.search.close()
			if res == nil {
				return m, nil
			}
			// Jump to the tab that shows the selected record
			for i, t := range m.tabs {
				if t == tabForResult(res) {
					return m.switchTab(i)
				}
			}
			return m, nil
		}
		cmd := m.search.update(msg, m.searchSvc)
		return m, cmd
	}

	// Filter input swallows everything except escape and enter
	if list.Filtering() {
		switch {
		case key.Matches(msg, m.keys.Escape):
			list.ClearFilter()
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			return m, nil
		}
		return m, list.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.active + 1) % len(m.tabs))

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.active - 1 + len(m.tabs)) % len(m.tabs))

	case key.Matches(msg, m.keys.Up):
		list.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		list.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if m.currentTab() != TabProfile {
			return m, list.StartFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		cmd := m.search.open()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		m.api.ForceRecheck()
		list.SetLoading(true)
		return m, tea.Batch(m.loadTab(m.currentTab()), m.loadStats(), m.reindexSearch())

	case key.Matches(msg, m.keys.Logout):
		m.api.Logout()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) switchTab(next int) (tea.Model, tea.Cmd) {
	m.currentList().SetFocused(false)
	m.active = next
	list := m.currentList()
	list.SetFocused(true)
	list.SetLoading(true)
	return m, m.loadTab(m.currentTab())
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(styles.AccentStyle.Render("GEC Hostel"))
	b.WriteString("  ")
	b.WriteString(statsLine(m.stats, m.online))
	b.WriteString("\n")

	// Tab bar
	var tabBar []string
	for i, t := range m.tabs {
		style := styles.TabStyle
		if i == m.active {
			style = styles.ActiveTabStyle
		}
		tabBar = append(tabBar, style.Render(t.title()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabBar...))
	b.WriteString("\n")

	switch {
	case m.search.active:
		b.WriteString(m.search.view())
	case m.currentTab() == TabProfile:
		b.WriteString(profileView(m.profile, m.fees))
	default:
		m.currentList().SetFocused(true)
		b.WriteString(m.currentList().View())
	}
	b.WriteString("\n")

	b.WriteString(styles.DimStyle.Render("tab: switch · /: filter · s: search · r: refresh · L: logout · q: quit"))

	return b.String()
}
