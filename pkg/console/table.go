package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/githubnext/boomi-validate/pkg/styles"
)

var tableLog = logger.New("console:table")

// TableConfig describes a table rendered by RenderTable.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders rows as a bordered table. On a terminal lipgloss
// styles are applied; otherwise the table is drawn with ASCII borders so it
// survives CI log viewers. An empty config renders as the empty string.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 && len(config.Rows) == 0 {
		return ""
	}
	tableLog.Printf("Rendering table: title=%q, columns=%d, rows=%d", config.Title, len(config.Headers), len(config.Rows))

	t := table.New().
		Headers(config.Headers...).
		Rows(config.Rows...)

	if isTTY() {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(styles.TableBorder).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return styles.TableHeader
				}
				return styles.TableCell
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style {
				return lipgloss.NewStyle().Padding(0, 1)
			})
	}

	var b strings.Builder
	if config.Title != "" {
		b.WriteString(config.Title)
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
