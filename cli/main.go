package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)

// Model defines the application state
type Model struct {
	textInput textinput.Model
	spinner   spinner.Model
	client    *ApiClient
	useLLM    bool
	loading   bool
	summary   string
	status    string
	error     string
}

type parseResultMsg struct {
	result *ParseResult
}

type errorMsg struct {
	err string
}

func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "two big macs with extra cheese and a large coke..."
	ti.Focus()
	ti.CharLimit = 280
	ti.Width = 60

	client := NewApiClient()

	m := Model{
		textInput: ti,
		spinner:   s,
		client:    client,
	}
	if !client.CheckHealth() {
		m.error = fmt.Sprintf("API server at %s is not reachable", client.BaseURL)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.useLLM = !m.useLLM
			return m, nil
		case "enter":
			text := m.textInput.Value()
			if text == "" || m.loading {
				return m, nil
			}
			m.loading = true
			m.error = ""
			return m, parseOrder(m.client, text, m.useLLM)
		}

	case parseResultMsg:
		m.loading = false
		m.summary = msg.result.Summary
		m.status = fmt.Sprintf("parser=%s  restaurant=%s  confidence=%.2f  %dms",
			msg.result.ParserUsed, orDash(msg.result.Restaurant),
			msg.result.Confidence, msg.result.ElapsedMS)
		m.textInput.SetValue("")
		return m, nil

	case errorMsg:
		m.loading = false
		m.error = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	view := titleStyle.Render("food-sense order entry") + "\n\n"

	parserName := "rule"
	if m.useLLM {
		parserName = "llm"
	}
	view += infoStyle.Render("parser: "+parserName) + "  (tab to switch, esc to quit)\n\n"
	view += m.textInput.View() + "\n\n"

	if m.loading {
		view += m.spinner.View() + " parsing...\n"
	}
	if m.error != "" {
		view += errorStyle.Render(m.error) + "\n"
	}
	if m.summary != "" {
		view += summaryStyle.Render(m.summary) + "\n"
		view += m.status + "\n"
	}

	return docStyle.Render(view)
}

func parseOrder(client *ApiClient, text string, useLLM bool) tea.Cmd {
	return func() tea.Msg {
		parser := "rule"
		if useLLM {
			parser = "llm"
		}
		result, err := client.ParseOrder(text, parser)
		if err != nil {
			return errorMsg{err: err.Error()}
		}
		return parseResultMsg{result: result}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
