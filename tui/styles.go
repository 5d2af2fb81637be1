package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/step"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Event log
	LogStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	CurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Containers
	BarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

var cellStyles = map[gridgraph.CellState]lipgloss.Style{
	gridgraph.Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	gridgraph.Wall:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	gridgraph.Start:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	gridgraph.End:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	gridgraph.Visited: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	gridgraph.Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
}

var kindStyles = map[step.Kind]lipgloss.Style{
	step.KindCompare:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	step.KindSwap:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	step.KindFound:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	step.KindNotFound: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	step.KindDone:     lipgloss.NewStyle().Bold(true),
}

// StyleForKind returns the label style of an event kind.
func StyleForKind(k step.Kind) lipgloss.Style {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return LogStyle
}
