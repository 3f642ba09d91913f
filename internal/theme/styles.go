package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles the views render with. They are derived
// entirely from a Palette.
type Styles struct {
	Body        lipgloss.Style
	Title       lipgloss.Style
	Logo        lipgloss.Style
	NavItem     lipgloss.Style
	NavActive   lipgloss.Style
	ThemeButton lipgloss.Style
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	ItemName    lipgloss.Style
	Price       lipgloss.Style
	Delete      lipgloss.Style
	Description lipgloss.Style
	Muted       lipgloss.Style
	Footer      lipgloss.Style
	Banner      lipgloss.Style
}

// NewStyles builds the view styles for a palette.
func NewStyles(p Palette) Styles {
	body := lipgloss.NewStyle().
		Foreground(p.MainColor).
		Background(p.BackgroundColor)

	return Styles{
		Body: body,
		Title: body.
			Bold(true).
			MarginBottom(1),
		Logo: body.
			Bold(true).
			PaddingRight(2),
		NavItem: body.
			PaddingLeft(1).
			PaddingRight(1),
		NavActive: body.
			Foreground(p.AccentPink).
			Bold(true).
			Underline(true).
			PaddingLeft(1).
			PaddingRight(1),
		ThemeButton: lipgloss.NewStyle().
			Foreground(p.BackgroundColor).
			Background(p.MainColor).
			Padding(0, 1).
			MarginLeft(2),
		Card: body.
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.MainColor).
			BorderBackground(p.BackgroundColor).
			Width(28),
		CardActive: body.
			Padding(0, 1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.AccentPink).
			BorderBackground(p.BackgroundColor).
			Width(28),
		ItemName: body.
			Bold(true),
		Price: body.
			Foreground(p.AccentPink),
		Delete: body.
			Foreground(p.AccentRed),
		Description: body.
			Italic(true),
		Muted: body.
			Faint(true),
		Footer: body.
			Faint(true).
			MarginTop(1),
		Banner: body.
			Foreground(p.AccentRed).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.AccentRed).
			BorderBackground(p.BackgroundColor).
			Padding(0, 1),
	}
}

// For returns the styles of a theme.
func For(name Name) Styles {
	return NewStyles(PaletteFor(name))
}
