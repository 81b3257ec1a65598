package main

import (
	"context"
	"fmt"

	"daytona-workspace/workspace"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var upCmd = &cobra.Command{
	Use:   "up [profile]",
	Short: "Provision a workspace and wait for it to start",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	profile := ""
	if len(args) > 0 {
		profile = args[0]
	}

	config, err := resolveConfig(profile)
	if err != nil {
		return err
	}

	ws, err := workspace.New(config)
	if err != nil {
		return err
	}

	model := newUpModel(ws)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m := final.(upModel)
	if m.err != nil {
		return m.err
	}

	log.Info("workspace ready", "id", ws.ID)
	fmt.Println(labelStyle.Render("id:   ") + ws.ID)
	fmt.Println(labelStyle.Render("url:  ") + ws.URL)
	fmt.Println(labelStyle.Render("host: ") + ws.Host)
	return nil
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type setupDoneMsg struct {
	err error
}

type statusUpdateMsg struct {
	message string
}

type upModel struct {
	ws         *workspace.Daytona
	spinner    spinner.Model
	statusChan chan string
	messages   []string
	done       bool
	err        error
}

func newUpModel(ws *workspace.Daytona) upModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return upModel{
		ws:         ws,
		spinner:    s,
		statusChan: make(chan string, 8),
	}
}

func runSetup(ws *workspace.Daytona, statusChan chan<- string) tea.Cmd {
	return func() tea.Msg {
		statusChan <- "Creating sandbox..."
		err := ws.Setup(context.Background())
		if err == nil {
			statusChan <- "Sandbox started"
		}
		close(statusChan)
		return setupDoneMsg{err: err}
	}
}

func waitForStatus(statusChan <-chan string) tea.Cmd {
	return func() tea.Msg {
		message, ok := <-statusChan
		if !ok {
			return nil
		}
		return statusUpdateMsg{message: message}
	}
}

func (m upModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		runSetup(m.ws, m.statusChan),
		waitForStatus(m.statusChan),
	)
}

func (m upModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusUpdateMsg:
		m.messages = append(m.messages, msg.message)
		return m, waitForStatus(m.statusChan)

	case setupDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m upModel) View() string {
	if m.done {
		return ""
	}

	view := ""
	for _, message := range m.messages {
		view += statusStyle.Render(message) + "\n"
	}
	view += m.spinner.View() + " Provisioning workspace..."
	return view
}
