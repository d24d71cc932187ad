package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/gechostel/hosteldesk/internal/tui/styles"
)

// List is a scrollable, filterable row list. Filtering is fuzzy over the
// row labels; non-matching rows are hidden while the filter is active.
type List struct {
	title string
	rows  []string

	cursor     int
	offset     int
	maxVisible int

	width   int
	height  int
	focused bool

	loading      bool
	spinnerFrame int

	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into rows
}

// NewList creates a list with the given header title
func NewList(title string) *List {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &List{title: title, filterInput: ti}
}

// SetRows replaces the list content, keeping the cursor in range
func (l *List) SetRows(rows []string) {
	l.rows = rows
	l.loading = false
	l.applyFilter()
	if l.cursor >= len(l.visible()) {
		l.cursor = max(0, len(l.visible())-1)
	}
}

// SetSize updates the rendered dimensions
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = max(1, height-4)
}

// SetFocused toggles the active border
func (l *List) SetFocused(focused bool) { l.focused = focused }

// SetLoading toggles the loading spinner
func (l *List) SetLoading(loading bool) { l.loading = loading }

// Tick advances the spinner one frame
func (l *List) Tick() { l.spinnerFrame++ }

// Filtering reports whether the filter input is capturing keys
func (l *List) Filtering() bool { return l.filterActive }

// StartFilter activates the filter input
func (l *List) StartFilter() tea.Cmd {
	l.filterActive = true
	l.filterInput.SetValue("")
	l.filterQuery = ""
	l.applyFilter()
	return l.filterInput.Focus()
}

// ClearFilter deactivates the filter and restores all rows
func (l *List) ClearFilter() {
	l.filterActive = false
	l.filterInput.Blur()
	l.filterQuery = ""
	l.applyFilter()
}

// Update handles key events while the filter input is active
func (l *List) Update(msg tea.Msg) tea.Cmd {
	if !l.filterActive {
		return nil
	}
	var cmd tea.Cmd
	l.filterInput, cmd = l.filterInput.Update(msg)
	if q := l.filterInput.Value(); q != l.filterQuery {
		l.filterQuery = q
		l.applyFilter()
		l.cursor = 0
		l.offset = 0
	}
	return cmd
}

// CursorUp moves the selection up one row
func (l *List) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
}

// CursorDown moves the selection down one row
func (l *List) CursorDown() {
	if l.cursor < len(l.visible())-1 {
		l.cursor++
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

// SelectedIndex returns the index into the original rows of the current
// selection, or -1 when the list is empty
func (l *List) SelectedIndex() int {
	visible := l.visible()
	if len(visible) == 0 || l.cursor >= len(visible) {
		return -1
	}
	if l.filterQuery == "" {
		return l.cursor
	}
	return l.filteredIdx[l.cursor]
}

// visible returns the rows after filtering
func (l *List) visible() []string {
	if l.filterQuery == "" {
		return l.rows
	}
	visible := make([]string, len(l.filteredIdx))
	for i, idx := range l.filteredIdx {
		visible[i] = l.rows[idx]
	}
	return visible
}

// applyFilter recomputes filteredIdx from the current query
func (l *List) applyFilter() {
	if l.filterQuery == "" {
		l.filteredIdx = nil
		return
	}
	matches := fuzzy.Find(l.filterQuery, l.rows)
	l.filteredIdx = make([]int, len(matches))
	for i, m := range matches {
		l.filteredIdx[i] = m.Index
	}
}

// View renders the list
func (l *List) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(l.title))
	b.WriteString("\n")

	if l.filterActive {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	visible := l.visible()
	switch {
	case l.loading:
		frame := styles.SpinnerFrames[l.spinnerFrame%len(styles.SpinnerFrames)]
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%s loading...", frame)))
	case len(visible) == 0:
		b.WriteString(styles.DimStyle.Render("nothing to show"))
	default:
		end := min(l.offset+l.maxVisible, len(visible))
		for i := l.offset; i < end; i++ {
			row := truncate(visible[i], max(4, l.width-4))
			if i == l.cursor && l.focused {
				b.WriteString(styles.HighlightStyle.Render(row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}
		if end < len(visible) {
			b.WriteString(styles.DimStyle.Render("↓ more"))
		}
	}

	border := styles.InactiveBorder
	if l.focused {
		border = styles.ActiveBorder
	}
	return border.Width(max(10, l.width-2)).Render(b.String())
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
