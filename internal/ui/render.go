package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slasshy/internal/media"
	"slasshy/internal/recommend"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	ratingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// placeholderGlyph stands in for a missing poster, keyed by content kind.
func placeholderGlyph(kind media.Kind) string {
	switch kind {
	case media.TVShow:
		return "📺"
	case media.Anime:
		return "🎌"
	default:
		return "🎬"
	}
}

// ResultLine formats one search result for the fzf list.
func ResultLine(m media.Media) string {
	parts := []string{m.Title}
	if m.Year != "" {
		parts = append(parts, badgeStyle.Render(fmt.Sprintf("(%s)", m.Year)))
	}
	if m.Rating > 0 {
		parts = append(parts, ratingStyle.Render(fmt.Sprintf("★ %.1f", m.Rating)))
	}
	switch m.Kind {
	case media.TVShow:
		parts = append(parts, badgeStyle.Render("[TV]"))
	case media.Anime:
		tag := "[Anime]"
		if m.Format == media.FormatMovie {
			tag = "[Anime Movie]"
		}
		parts = append(parts, badgeStyle.Render(tag))
	default:
		parts = append(parts, badgeStyle.Render("[Movie]"))
	}
	return strings.Join(parts, " ")
}

// MediaCard renders the detail panel shown before playback. Direct-entry
// selections carry no fetched metadata, so only the ID line is shown.
func MediaCard(sel *media.Selection) string {
	if sel == nil || sel.Media == nil {
		return ""
	}
	m := sel.Media

	if sel.DirectEntry {
		return cardStyle.Render(fmt.Sprintf("%s  Direct entry: %s ID %d",
			placeholderGlyph(m.Kind), m.Kind, m.ID))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("\n")

	var meta []string
	if m.Year != "" {
		meta = append(meta, "📅 "+m.Year)
	}
	if m.Rating > 0 {
		meta = append(meta, ratingStyle.Render(fmt.Sprintf("★ %.1f/10", m.Rating)))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, "  "))
		b.WriteString("\n")
	}

	if m.Overview != "" {
		b.WriteString(faintStyle.Render(m.Overview))
		b.WriteString("\n")
	}

	if m.PosterURL == "" {
		b.WriteString(placeholderGlyph(m.Kind))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render("View on " + providerLink(m)))

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// providerLink builds the canonical catalog page URL for the media.
func providerLink(m *media.Media) string {
	if m.Kind == media.Anime {
		return fmt.Sprintf("https://anilist.co/anime/%d", m.ID)
	}
	return fmt.Sprintf("https://www.themoviedb.org/%s/%d", m.Kind, m.ID)
}

// RecommendationList renders AI/catalog recommendations.
func RecommendationList(recs []recommend.Recommendation) string {
	var b strings.Builder
	for i, r := range recs {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%d. %s", i+1, r.Title)))
		if r.Year != "" {
			b.WriteString(badgeStyle.Render(" (" + r.Year + ")"))
		}
		b.WriteString("\n")
		if r.Description != "" {
			b.WriteString("   " + r.Description + "\n")
		}
		if r.Reason != "" {
			b.WriteString(faintStyle.Render("   " + r.Reason))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Notice renders the rotating notification banner.
func Notice(text string) string {
	if text == "" {
		return ""
	}
	return noticeStyle.Render(text)
}
