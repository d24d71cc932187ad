package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gechostel/hosteldesk/internal/service"
	"github.com/gechostel/hosteldesk/internal/tui/styles"
)

const maxSearchResults = 12

// omnibar is the global search overlay. It queries the search index as
// the user types; rooms, notices, and (for admins) students all match.
type omnibar struct {
	input   textinput.Model
	results []service.Result
	cursor  int
	active  bool
}

func newOmnibar() omnibar {
	ti := textinput.New()
	ti.Placeholder = "search rooms, notices, students..."
	ti.Prompt = "search: "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	return omnibar{input: ti}
}

func (o *omnibar) open() tea.Cmd {
	o.active = true
	o.results = nil
	o.cursor = 0
	o.input.SetValue("")
	return o.input.Focus()
}

func (o *omnibar) close() {
	o.active = false
	o.input.Blur()
}

// update feeds a key event to the input and reruns the query
func (o *omnibar) update(msg tea.Msg, svc *service.SearchService) tea.Cmd {
	before := o.input.Value()
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	if q := o.input.Value(); q != before {
		o.results = svc.Search(q)
		if len(o.results) > maxSearchResults {
			o.results = o.results[:maxSearchResults]
		}
		o.cursor = 0
	}
	return cmd
}

func (o *omnibar) cursorUp() {
	if o.cursor > 0 {
		o.cursor--
	}
}

func (o *omnibar) cursorDown() {
	if o.cursor < len(o.results)-1 {
		o.cursor++
	}
}

// selected returns the highlighted result, or nil
func (o *omnibar) selected() *service.Result {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor]
}

func (o *omnibar) view() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	if len(o.results) == 0 {
		if o.input.Value() != "" {
			b.WriteString(styles.DimStyle.Render("no matches"))
		} else {
			b.WriteString(styles.DimStyle.Render("type to search"))
		}
		return b.String()
	}

	for i, res := range o.results {
		row := fmt.Sprintf("%-8s %s", res.Kind, res.Label)
		if i == o.cursor {
			b.WriteString(styles.HighlightStyle.Render(row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// tabForResult maps a search hit to the tab that shows it
func tabForResult(res *service.Result) Tab {
	switch res.Kind {
	case service.KindNotice:
		return TabNotices
	case service.KindStudent:
		return TabStudents
	default:
		return TabRooms
	}
}
