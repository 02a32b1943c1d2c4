package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"checkline/internal/engine"
	"checkline/internal/storage"
	"checkline/internal/ui"
)

// RunChecklist opens the interactive screen for a single run.
func RunChecklist(ctx context.Context, svc *engine.Service, runID string, out io.Writer) error {
	m := newRunModel(ctx, svc, runID)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type runModel struct {
	ctx   context.Context
	svc   *engine.Service
	runID string

	width  int
	height int

	run      *storage.ChecklistRun
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	run *storage.ChecklistRun
	err error
}

type toggledMsg struct {
	item *storage.ChecklistRunItem
	err  error
}

type finishedMsg struct {
	res *engine.FinishResult
	err error
}

func newRunModel(ctx context.Context, svc *engine.Service, runID string) runModel {
	return runModel{
		ctx:     ctx,
		svc:     svc,
		runID:   runID,
		loading: true,
		lastLog: "Loading…",
	}
}

func (m runModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m runModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		run, err := m.svc.GetRun(m.ctx, m.runID)
		if err == nil && run == nil {
			err = engine.ErrRunNotFound
		}
		return loadedMsg{run: run, err: err}
	}
}

func (m runModel) toggleCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		it, err := m.svc.ToggleItem(m.ctx, m.runID, itemID)
		return toggledMsg{item: it, err: err}
	}
}

func (m runModel) finishCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.FinishRun(m.ctx, m.runID)
		return finishedMsg{res: res, err: err}
	}
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.run = msg.run
		if m.selected >= len(m.run.Items) {
			m.selected = len(m.run.Items) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = "Space toggles, f finishes, q quits."
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.loadCmd()
	case finishedMsg:
		if msg.err != nil {
			m.lastLog = "Finish failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		if n := len(msg.res.Unlocked); n > 0 {
			titles := make([]string, 0, n)
			for _, a := range msg.res.Unlocked {
				titles = append(titles, a.Title)
			}
			m.lastLog = fmt.Sprintf("Finished! %s %s", ui.IconTrophy, strings.Join(titles, ", "))
		} else {
			m.lastLog = "Finished!"
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.run != nil && m.selected < len(m.run.Items)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter", "c":
			if m.run == nil || m.selected < 0 || m.selected >= len(m.run.Items) {
				return m, nil
			}
			if m.run.CompletedAt != nil {
				m.lastLog = "Run already completed."
				return m, nil
			}
			return m, m.toggleCmd(m.run.Items[m.selected].ID)
		case "f":
			if m.run == nil {
				return m, nil
			}
			if m.run.CompletedAt != nil {
				m.lastLog = "Run already completed."
				return m, nil
			}
			if !engine.CanFinish(m.run) {
				m.lastLog = "Required items remain unchecked."
				return m, nil
			}
			return m, m.finishCmd()
		}
	}
	return m, nil
}

func (m runModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.run == nil {
		return "Loading…\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconList, m.run.Title))
	b.WriteString("  " + ui.RunStatus(m.run.CompletedAt != nil))
	b.WriteString("\n")
	b.WriteString(ui.ProgressBar(engine.Progress(m.run), 24))
	b.WriteString("\n\n")

	for i, it := range m.run.Items {
		line := fmt.Sprintf("%s %s", ui.Checkbox(it.IsChecked), it.Title)
		if !it.IsRequired {
			line += " " + ui.Muted.Render("(optional)")
		}
		if it.Notes != nil {
			line += "\n    " + ui.Muted.Render(*it.Notes)
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("❯ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("j/k move · space toggle · f finish · q quit") + "\n")
	return b.String()
}
