package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bytestashy/bytestashy/internal/models"
)

const defaultPageSize = 10

var (
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func (a *App) printSnippetList(snippets []models.Snippet) {
	for _, sn := range snippets {
		fmt.Fprintln(a.out, snippetLine(sn))
	}
}

func (a *App) printSnippet(sn *models.Snippet) {
	fmt.Fprintln(a.out, snippetLine(*sn))
	if sn.Description != "" {
		fmt.Fprintln(a.out, sn.Description)
	}
	fmt.Fprintf(a.out, "%s %s  %s %d\n",
		labelStyle.Render("updated:"), sn.UpdatedAt,
		labelStyle.Render("shares:"), sn.ShareCount)
}

// snippetLine formats one snippet as a single row, e.g.
//
//	#7 My snippet [go, cli] (2 files)
func snippetLine(sn models.Snippet) string {
	var b strings.Builder
	b.WriteString(idStyle.Render(fmt.Sprintf("#%d", sn.ID)))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(sn.Title))
	if len(sn.Categories) > 0 {
		b.WriteString(" ")
		b.WriteString(categoryStyle.Render("[" + strings.Join(sn.Categories, ", ") + "]"))
	}
	n := len(sn.Fragments)
	noun := "files"
	if n == 1 {
		noun = "file"
	}
	b.WriteString(fmt.Sprintf(" (%d %s)", n, noun))
	return b.String()
}

// paginate slices one page out of the full collection; pages start at 1.
// A page past the end is empty, not an error.
func paginate(snippets []models.Snippet, page, size int) []models.Snippet {
	start := (page - 1) * size
	if start >= len(snippets) {
		return nil
	}
	end := min(start+size, len(snippets))
	return snippets[start:end]
}

func pageCount(total, size int) int {
	if total == 0 {
		return 1
	}
	return (total + size - 1) / size
}
