package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	HostelTeal = lipgloss.Color("#14B8A6")
	SlateDark  = lipgloss.Color("#1F2937")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Amber      = lipgloss.Color("#F59E0B")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(HostelTeal)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(HostelTeal)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Amber)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(HostelTeal).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateDark).
			Bold(true).
			Padding(0, 1)

	FilterPromptStyle = lipgloss.NewStyle().Foreground(HostelTeal)
	FilterStyle       = lipgloss.NewStyle().Foreground(White)
)

// Status glyphs
const (
	AvailableChar = "●"
	OccupiedChar  = "○"
)

// Pre-rendered status indicators
var (
	AvailableDot = lipgloss.NewStyle().Foreground(Green).Render(AvailableChar)
	OccupiedDot  = lipgloss.NewStyle().Foreground(Red).Render(OccupiedChar)

	OnlineBadge  = SuccessStyle.Render("online")
	OfflineBadge = WarnStyle.Render("offline (cached)")
)

// SpinnerFrames for loading animation
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
