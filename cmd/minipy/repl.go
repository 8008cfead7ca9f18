package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minipy/mini"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	interp      *mini.Interpreter
	out         *bytes.Buffer
	pending     []string
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showVars    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlV key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous line"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next line"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "execute"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlV: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "toggle vars"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type a statement..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "minipy> "

	out := new(bytes.Buffer)

	return replModel{
		textInput:  ti,
		interp:     mini.NewInterpreter(mini.Config{Output: out}),
		out:        out,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
		showHelp:   false,
		showVars:   false,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlV):
			m.showVars = !m.showVars
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			return m.handleEnter()
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleEnter submits the current line. A line ending in ':' opens a
// block that keeps collecting lines until an empty one is entered; only
// then does the whole unit run.
func (m replModel) handleEnter() (replModel, tea.Cmd) {
	input := m.textInput.Value()
	trimmed := strings.TrimSpace(input)

	if len(m.pending) > 0 {
		if trimmed == "" {
			source := strings.Join(m.pending, "\n") + "\n"
			m.pending = nil
			m.textInput.Prompt = "minipy> "
			output, isErr := m.evaluate(source)
			m.history = append(m.history, historyEntry{input: source, output: output, isErr: isErr})
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
		m.pending = append(m.pending, input)
		m.cmdHistory = append(m.cmdHistory, input)
		m.textInput.SetValue("")
		m.historyIdx = -1
		return m, nil
	}

	if trimmed == "" {
		return m, nil
	}

	if strings.HasPrefix(trimmed, ":") {
		var cmd tea.Cmd
		m, cmd = m.handleCommand(trimmed)
		m.textInput.SetValue("")
		m.historyIdx = -1
		return m, cmd
	}

	m.cmdHistory = append(m.cmdHistory, input)
	m.historyIdx = -1

	if strings.HasSuffix(trimmed, ":") {
		m.pending = []string{input}
		m.textInput.Prompt = "   ... "
		m.textInput.SetValue("")
		return m, nil
	}

	output, isErr := m.evaluate(input + "\n")
	m.history = append(m.history, historyEntry{input: trimmed, output: output, isErr: isErr})
	m.textInput.SetValue("")
	return m, nil
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":reset", ":r":
		m.out.Reset()
		m.interp = mini.NewInterpreter(mini.Config{Output: m.out})
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Interpreter reset",
			isErr:  false,
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}

	words := strings.Fields(input)
	if len(words) == 0 {
		return m
	}
	lastWord := words[len(words)-1]

	var completions []string

	keywords := []string{"if", "else", "def", "return", "print", "and", "or", "is", "not", "None", "True", "False", "int", "float", "str", "bool"}
	for _, k := range keywords {
		if strings.HasPrefix(k, lastWord) {
			completions = append(completions, k)
		}
	}

	for name := range m.interp.Globals() {
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}
	for _, name := range m.interp.Functions() {
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}

	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		sort.Strings(completions)
		m.history = append(m.history, historyEntry{
			input:  "",
			output: "Completions: " + strings.Join(completions, ", "),
			isErr:  false,
		})
	}

	return m
}

// evaluate runs one source unit against the session interpreter. A bare
// expression is rewritten to a print of itself so its value shows up,
// the way interactive Python echoes results.
func (m *replModel) evaluate(source string) (string, bool) {
	if expr, ok := bareExpression(source); ok {
		source = "print(" + expr + ")\n"
	}

	if err := m.interp.Run(source); err != nil {
		m.out.Reset()
		return err.Error(), true
	}
	output := strings.TrimRight(m.out.String(), "\n")
	m.out.Reset()
	if output == "" {
		return "ok", false
	}
	return output, false
}

func bareExpression(source string) (string, bool) {
	tokens, err := mini.Tokenize(source)
	if err != nil {
		return "", false
	}
	stmts, err := mini.Parse(tokens)
	if err != nil || len(stmts) != 1 {
		return "", false
	}
	if _, ok := stmts[0].(*mini.ExprStmt); !ok {
		return "", false
	}
	return strings.TrimSpace(source), true
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("MiniPy REPL")
	b.WriteString(header + " " + mutedStyle.Render("v"+version) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 11
	}
	globals := m.interp.Globals()
	if m.showVars {
		reservedLines += len(globals) + 3
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			for _, line := range strings.Split(strings.TrimRight(entry.input, "\n"), "\n") {
				b.WriteString(mutedStyle.Render("  › ") + line + "\n")
			}
		}
		if entry.isErr {
			for _, line := range strings.Split(entry.output, "\n") {
				b.WriteString("  " + errorStyle.Render("✗ "+line) + "\n")
			}
		} else {
			for _, line := range strings.Split(entry.output, "\n") {
				b.WriteString("  " + resultStyle.Render("→ "+line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if m.showVars {
		b.WriteString(renderVarsPanel(globals))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+v") + helpDescStyle.Render(" vars  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderVarsPanel(globals map[string]mini.Value) string {
	if len(globals) == 0 {
		return borderStyle.Render(mutedStyle.Render("No variables defined"))
	}

	names := make([]string, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Variables"))
	varNameStyle := lipgloss.NewStyle().Foreground(highlightColor)
	for _, name := range names {
		line := fmt.Sprintf("  %s = %s", varNameStyle.Render(name), globals[name].String())
		lines = append(lines, line)
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate line history"},
		{"Tab", "Autocomplete"},
		{"Enter", "Execute statement"},
		{"x: int = 1", "Declare a variable"},
		{"if x:", "Start a block; empty line runs it"},
		{":help", "Toggle this help"},
		{":vars", "Toggle variables panel"},
		{":clear", "Clear history"},
		{":reset", "Reset the interpreter"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-12s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
