package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nconklindev/csvfix/internal/converter"
	"github.com/nconklindev/csvfix/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type state int

const (
	stateFilePicker state = iota
	stateProcessing
	stateComplete
	stateError
)

type Model struct {
	state        state
	filepicker   filepicker.Model
	paths        []string
	opts         converter.Options
	result       *types.BatchResult
	err          error
	width        int
	height       int
	progress     progress.Model
	progressChan chan float64
	resultChan   chan batchResultMsg
}

type batchResultMsg struct {
	result *types.BatchResult
	err    error
}

type batchCompleteMsg batchResultMsg

type progressMsg float64

type waitForProgressMsg struct{}

// InitialModel starts processing paths right away, or opens a file picker
// when no paths were given.
func InitialModel(paths []string, opts converter.Options) Model {
	fp := filepicker.New()
	fp.AllowedTypes = converter.SupportedExtensions
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42"))
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB84D"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB84D"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42")).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	prog := progress.New(progress.WithGradient("#FF8C42", "#FF9F5A"))

	m := Model{
		state:      stateFilePicker,
		filepicker: fp,
		paths:      paths,
		opts:       opts,
		progress:   prog,
	}
	if len(paths) > 0 {
		m.state = stateProcessing
		m.progressChan, m.resultChan = newChannels()
	}
	return m
}

// Result returns the finished batch, or nil if it never completed.
func (m Model) Result() *types.BatchResult {
	return m.result
}

// Err returns the error that stopped the batch.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	if m.state == stateProcessing {
		return m.startBatch()
	}
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := msg.Height - 12
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		return m, nil

	case tea.KeyMsg:
		// Quitting mid-batch could interrupt a rewrite, so processing has no
		// quit binding.
		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateComplete, stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case batchCompleteMsg:
		m.result = msg.result
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.state = stateComplete
		return m, m.progress.SetPercent(1)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateProcessing {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil

	case waitForProgressMsg:
		return m, waitForProgress(m.progressChan, m.resultChan)
	}

	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m.paths = []string{path}
			m.state = stateProcessing
			m.progressChan, m.resultChan = newChannels()
			return m, m.startBatch()
		}

		return m, cmd
	}

	return m, nil
}

func newChannels() (chan float64, chan batchResultMsg) {
	return make(chan float64, 100), make(chan batchResultMsg, 1)
}

// startBatch runs the batch in a goroutine and relays its progress.
func (m Model) startBatch() tea.Cmd {
	progressChan := m.progressChan
	resultChan := m.resultChan
	paths := m.paths
	opts := m.opts

	return tea.Batch(
		func() tea.Msg {
			go func() {
				result, err := converter.Run(paths, opts, progressChan)
				resultChan <- batchResultMsg{result: result, err: err}

				close(progressChan)
				close(resultChan)
			}()

			return waitForProgressMsg{}
		},
		m.progress.Init(),
	)
}

func waitForProgress(progressChan chan float64, resultChan chan batchResultMsg) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			res, ok := <-resultChan
			if ok {
				return batchCompleteMsg(res)
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateProcessing:
		return m.viewProcessing()
	case stateComplete:
		return m.viewComplete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("csvfix - Numeric Cell Normalizer"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select a CSV or XLSX file to rewrite in place"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Processing..."))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Normalizing %d path(s) with locale %s", len(m.paths), m.opts.Locale))
	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ Done"))
	s.WriteString("\n\n")

	maxPathLen := m.width - 20
	if maxPathLen < 30 {
		maxPathLen = 30
	}

	for _, f := range m.result.Files {
		counts := f.Converted()
		line := fmt.Sprintf("%s  %d rows, %d general, %d currency, %d percent, %s",
			truncatePath(f.File, maxPathLen),
			f.Rows,
			counts[types.CategoryGeneral],
			counts[types.CategoryCurrency],
			counts[types.CategoryPercent],
			humanize.Bytes(uint64(f.BytesWritten)),
		)
		s.WriteString(SuccessStyle.Render(line))
		s.WriteString("\n")
	}

	for _, f := range m.result.Failed {
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("✗ %s: %v", truncatePath(f.File, maxPathLen), f.Err)))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Files rewritten: %d\n", len(m.result.Files)))
	s.WriteString(fmt.Sprintf("Files skipped: %d\n", len(m.result.Failed)))
	s.WriteString(HelpStyle.Render("Press q, enter or esc to exit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q, enter or esc to exit"))

	return BoxStyle.Render(s.String())
}

func truncatePath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	base := filepath.Base(path)
	if len(base)+3 >= max {
		return "..." + base
	}
	return "..." + path[len(path)-max+3:]
}
