package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

const appName = "scrollit"

var breadcrumbPadStyle = lipgloss.NewStyle().Padding(0, 1)

func renderBreadcrumb(segments ...string) string {
	parts := make([]string, 0, len(segments))
	chevron := activeTheme.Separator.Render(" > ")
	style := activeTheme.HintText.Bold(true)
	for _, seg := range segments {
		parts = append(parts, style.Render(seg))
	}
	return breadcrumbPadStyle.Render(strings.Join(parts, chevron))
}

func renderSeparator(width int) string {
	return activeTheme.Separator.Render(strings.Repeat("─", max(0, width)))
}
