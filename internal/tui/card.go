package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devfinder/internal/presenter"
)

type linkRow struct {
	icon string
	link presenter.Link
}

// RenderCard draws card inside a box of the given outer width.
func RenderCard(card presenter.Card, styles Styles, width int) string {
	inner := width - styles.Card.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	identity := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Name.Render(card.Name),
		styles.Handle.Render("@"+card.Handle),
		styles.Avatar.Render(card.AvatarURL),
	)
	joined := styles.Joined.Render("Joined " + card.Joined)
	gap := inner - lipgloss.Width(identity) - lipgloss.Width(joined)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, identity, strings.Repeat(" ", gap), joined)

	bio := styles.Bio.Width(inner).Render(card.Bio)

	stats := renderStats(card, styles, inner)

	links := renderLinks([]linkRow{
		{icon: "📍", link: card.Location},
		{icon: "🔗", link: card.Website},
		{icon: "🐦", link: card.Twitter},
		{icon: "🏢", link: card.Company},
	}, styles, inner)

	body := lipgloss.JoinVertical(lipgloss.Left, header, bio, stats, links)
	return styles.Card.Width(blockWidth(styles.Card, width)).Render(body)
}

func renderStats(card presenter.Card, styles Styles, width int) string {
	cells := []struct{ label, value string }{
		{"Repos", card.Repos},
		{"Followers", card.Followers},
		{"Following", card.Following},
	}

	colWidth := (width - styles.Stats.GetHorizontalFrameSize()) / len(cells)
	if colWidth < 10 {
		colWidth = 10
	}

	cols := make([]string, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				styles.StatLabel.Render(c.label),
				styles.StatValue.Render(c.value),
			),
		))
	}
	return styles.Stats.Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

func renderLinks(rows []linkRow, styles Styles, width int) string {
	colWidth := width / 2
	rendered := make([]string, 0, len(rows))
	for _, r := range rows {
		style := styles.Link
		if !r.link.Available {
			style = styles.Unavailable
		}
		rendered = append(rendered, lipgloss.NewStyle().Width(colWidth).Render(
			style.Render(r.icon+"  "+r.link.Text),
		))
	}

	var lines []string
	for i := 0; i < len(rendered); i += 2 {
		end := i + 2
		if end > len(rendered) {
			end = len(rendered)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderPlain writes card as undecorated text, one field per line.
func RenderPlain(card presenter.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (@%s)\n", card.Name, card.Handle)
	fmt.Fprintf(&b, "Joined %s\n", card.Joined)
	fmt.Fprintf(&b, "Avatar: %s\n", card.AvatarURL)
	fmt.Fprintf(&b, "\n%s\n\n", card.Bio)
	fmt.Fprintf(&b, "Repos: %s  Followers: %s  Following: %s\n\n", card.Repos, card.Followers, card.Following)
	writePlainLink(&b, "Location", card.Location)
	writePlainLink(&b, "Website", card.Website)
	writePlainLink(&b, "Twitter", card.Twitter)
	writePlainLink(&b, "Company", card.Company)
	return b.String()
}

func writePlainLink(b *strings.Builder, label string, link presenter.Link) {
	if link.URL != "" {
		fmt.Fprintf(b, "%-9s %s <%s>\n", label+":", link.Text, link.URL)
		return
	}
	fmt.Fprintf(b, "%-9s %s\n", label+":", link.Text)
}
