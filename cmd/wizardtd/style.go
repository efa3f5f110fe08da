package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// styles holds the lipgloss styles for command output. When stdout is not a
// terminal every style is empty so piped output stays plain.
type styles struct {
	styled bool
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	muted  lipgloss.Style
	box    lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
}

func newStyles() styles {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain, label: plain.Width(16), value: plain, good: plain, bad: plain,
			muted: plain, box: plain, header: plain, cell: plain.PaddingRight(2), border: plain,
		}
	}

	return styles{
		styled: true,
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16),
		value:  lipgloss.NewStyle().Bold(true),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// newTable returns a table using the header and cell styles.
func (s styles) newTable(headers ...string) *table.Table {
	t := table.New().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})

	if s.styled {
		return t.Border(lipgloss.NormalBorder()).BorderStyle(s.border)
	}
	return t.Border(lipgloss.HiddenBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		BorderHeader(false)
}

// row renders one "label value" line.
func (s styles) row(label, value string) string {
	return s.label.Render(label) + " " + value
}
