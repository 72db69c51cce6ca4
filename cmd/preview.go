package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dringlabs/fixturegen/pkg/detrand"
	"github.com/dringlabs/fixturegen/pkg/fixture"
	"github.com/spf13/cobra"
)

// Styles
var (
	diffStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// bytesPerRow keeps the side-by-side dump narrow enough for a standard
// terminal.
const bytesPerRow = 8

type previewModel struct {
	pair     fixture.Pair
	viewport viewport.Model
	ready    bool
	quitting bool
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Reserve two lines for the title and one for the help footer.
		height := msg.Height - 3
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(renderPair(m.pair))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("%s  vs  %s", m.pair.A.Name, m.pair.B.Name))
	help := helpStyle.Render("↑/↓ scroll | q quit")
	return fmt.Sprintf("%s\n\n%s\n%s", title, m.viewport.View(), help)
}

// renderPair produces a side-by-side hex dump of both files with
// differing bytes highlighted, one row per bytesPerRow offsets.
func renderPair(p fixture.Pair) string {
	a, b := p.A.Data, p.B.Data
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var sb strings.Builder
	for off := 0; off < n; off += bytesPerRow {
		sb.WriteString(offsetStyle.Render(fmt.Sprintf("%08x", off)))
		sb.WriteString("  ")
		sb.WriteString(renderRow(a, b, off))
		sb.WriteString(" | ")
		sb.WriteString(renderRow(b, a, off))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderRow renders bytesPerRow bytes of data starting at off, styling
// every byte that differs from the same offset in other. Offsets past the
// end of data render as blanks to keep columns aligned.
func renderRow(data, other []byte, off int) string {
	cells := make([]string, 0, bytesPerRow)
	for i := off; i < off+bytesPerRow; i++ {
		if i >= len(data) {
			cells = append(cells, "  ")
			continue
		}
		cell := fmt.Sprintf("%02x", data[i])
		if i >= len(other) || data[i] != other[i] {
			cell = diffStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

// Cobra command setup
var previewCmd = &cobra.Command{
	Use:   "preview [pair]",
	Short: "Interactive hex view of one fixture pair",
	Long: `Preview renders a fixture pair side by side as a scrollable hex dump,
highlighting the bytes that differ. The pair is built in memory with the
same seed generate uses, so what you see is exactly what generate writes.

Example:
  fixturegen preview firmware`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := detrand.New(fixture.Seed)
		catalog := fixture.Catalog(src)

		var pair *fixture.Pair
		keys := make([]string, 0, len(catalog))
		for i := range catalog {
			keys = append(keys, catalog[i].Key)
			if catalog[i].Key == args[0] {
				pair = &catalog[i]
			}
		}
		if pair == nil {
			return fmt.Errorf("unknown pair %q (valid: %s)", args[0], strings.Join(keys, ", "))
		}

		p := tea.NewProgram(previewModel{pair: *pair})
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
