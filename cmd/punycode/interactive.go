package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type mode int

const (
	modeEncode mode = iota
	modeDecode
	modeDomainASCII
	modeDomainUnicode
	numModes
)

func (m mode) String() string {
	switch m {
	case modeEncode:
		return "encode"
	case modeDecode:
		return "decode"
	case modeDomainASCII:
		return "domain → ascii"
	case modeDomainUnicode:
		return "domain → unicode"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m mode) config() *config {
	return &config{
		decode: m == modeDecode || m == modeDomainUnicode,
		domain: m == modeDomainASCII || m == modeDomainUnicode,
	}
}

type interactiveModel struct {
	err    error
	result string
	input  textinput.Model
	mode   mode
}

func newInteractiveModel(start mode) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "label"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{input: ti, mode: start}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.mode = (m.mode + 1) % numModes
			m.convert()
			return m, nil

		case "shift+tab":
			m.mode = (m.mode + numModes - 1) % numModes
			m.convert()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.convert()
	return m, cmd
}

func (m *interactiveModel) convert() {
	m.result, m.err = "", nil
	value := m.input.Value()
	if value == "" {
		return
	}
	m.result, m.err = m.mode.config().converter()(value)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Punycode"))
	b.WriteString(" ")
	b.WriteString(modeStyle.Render(m.mode.String()))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.result != "":
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch mode • esc quit"))

	return b.String()
}

func runInteractive(cfg *config) error {
	start := modeEncode
	switch {
	case cfg.domain && cfg.decode:
		start = modeDomainUnicode
	case cfg.domain:
		start = modeDomainASCII
	case cfg.decode:
		start = modeDecode
	}
	p := tea.NewProgram(newInteractiveModel(start), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
