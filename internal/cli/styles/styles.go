package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/config/colors"
	"github.com/thenoetrevino/todo/internal/models"
)

var (
	scheme = *colors.Default()

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:"
	ValueStyle    lipgloss.Style

	// Notice styles
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(scheme)
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	scheme = c

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.InfoFg)).
		Background(lipgloss.Color(c.InfoBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg)).
		Background(lipgloss.Color(c.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusChip renders a status as "[Label]" in its configured color.
// Out-of-range codes render as "[?n]".
func StatusChip(s models.Status) string {
	label, err := s.Label()
	if err != nil {
		label = fmt.Sprintf("?%d", int(s))
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.StatusColor(int(s)))).
		Render("[" + label + "]")
}

// TaskLine renders a single list row: "[Pending] Buy milk  (id)"
func TaskLine(task *models.Task) string {
	return fmt.Sprintf("%s %s  %s",
		StatusChip(task.Status),
		ValueStyle.Render(task.Name),
		SubtitleStyle.Render("("+task.ID+")"))
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}
