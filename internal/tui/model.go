// Package tui is the terminal rendition of the caption form.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordweaver-ai/wordweaver/internal/caption"
	"github.com/wordweaver-ai/wordweaver/internal/client"
)

// copiedWindow is how long a copied card shows its confirmation.
const copiedWindow = 2 * time.Second

// Generator submits one form.
type Generator interface {
	Generate(ctx context.Context, req client.Request) client.Outcome
}

type field int

const (
	fieldDescription field = iota
	fieldLanguage
	fieldPlatform
	fieldStyle
	fieldSubmit
	fieldResults
)

type generatedMsg struct {
	outcome client.Outcome
}

type copyExpiredMsg struct {
	seq int
}

type Model struct {
	gen     Generator
	copyFn  func(string) error
	ctx     context.Context
	cancel  context.CancelFunc
	loading bool

	description textarea.Model
	spinner     spinner.Model
	focus       field
	language    int
	platform    int
	style       int

	results  []string
	failed   bool
	selected int
	copied   int
	copySeq  int
	status   string

	width    int
	quitting bool
}

// New builds the form. copyFn defaults to the system clipboard. Requests
// in flight are cancelled when ctx is done or the form quits.
func New(ctx context.Context, gen Generator, copyFn func(string) error) *Model {
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	desc := textarea.New()
	desc.Placeholder = "Example: End-of-year special promo, 50% discount..."
	desc.ShowLineNumbers = false
	desc.CharLimit = 2000
	desc.SetWidth(66)
	desc.SetHeight(4)
	desc.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styleFocused))

	return &Model{
		gen:         gen,
		copyFn:      copyFn,
		ctx:         ctx,
		description: desc,
		spinner:     sp,
		language:    indexOf(caption.Languages, caption.DefaultLanguage),
		platform:    indexOf(caption.Platforms, caption.DefaultPlatform),
		style:       indexOf(caption.Styles, caption.DefaultStyle),
		copied:      -1,
		width:       80,
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.description.SetWidth(min(66, max(20, msg.Width-8)))
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case generatedMsg:
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.loading = false
		m.results = msg.outcome.Alternatives
		m.failed = msg.outcome.Failed
		m.selected = 0
		return m, nil

	case copyExpiredMsg:
		if msg.seq == m.copySeq {
			m.copied = -1
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == fieldDescription {
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Submit):
		return m.submit()

	case key.Matches(msg, keys.Next):
		m.setFocus(m.nextField(1))
		return nil

	case key.Matches(msg, keys.Prev):
		m.setFocus(m.nextField(-1))
		return nil
	}

	switch m.focus {
	case fieldDescription:
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		return cmd

	case fieldLanguage, fieldPlatform, fieldStyle:
		switch {
		case key.Matches(msg, keys.Left):
			m.cycle(-1)
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Enter):
			m.cycle(1)
		}
		return m.copyByNumber(msg)

	case fieldSubmit:
		if key.Matches(msg, keys.Enter) {
			return m.submit()
		}
		return m.copyByNumber(msg)

	case fieldResults:
		switch {
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, keys.Down):
			if m.selected < len(m.results)-1 {
				m.selected++
			}
		case key.Matches(msg, keys.Copy), key.Matches(msg, keys.Enter):
			return m.copyResult(m.selected)
		}
		return m.copyByNumber(msg)
	}
	return nil
}

// submit sends the form once. It is a no-op while the description is blank
// or a request is already in flight.
func (m *Model) submit() tea.Cmd {
	if !client.CanSubmit(m.description.Value(), m.loading) {
		return nil
	}

	m.results = nil
	m.failed = false
	m.selected = 0
	m.copied = -1
	m.status = ""
	m.loading = true
	if m.focus == fieldResults {
		m.setFocus(fieldSubmit)
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	req := m.request()
	gen := m.gen

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return generatedMsg{outcome: gen.Generate(ctx, req)}
		},
	)
}

func (m *Model) request() client.Request {
	return client.Request{
		Description: m.description.Value(),
		Platform:    caption.Platforms[m.platform],
		Style:       caption.Styles[m.style],
		Language:    caption.Languages[m.language],
	}
}

// copyResult puts alternative i on the clipboard and marks it copied until
// copiedWindow elapses. A later copy restarts the window.
func (m *Model) copyResult(i int) tea.Cmd {
	if m.loading || i < 0 || i >= len(m.results) {
		return nil
	}
	if err := m.copyFn(m.results[i]); err != nil {
		m.status = "Copy failed: " + err.Error()
		return nil
	}

	m.status = ""
	m.selected = i
	m.copied = i
	m.copySeq++
	seq := m.copySeq
	return tea.Tick(copiedWindow, func(time.Time) tea.Msg {
		return copyExpiredMsg{seq: seq}
	})
}

func (m *Model) copyByNumber(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return nil
	}
	return m.copyResult(int(s[0] - '1'))
}

func (m *Model) cycle(delta int) {
	switch m.focus {
	case fieldLanguage:
		m.language = wrap(m.language+delta, len(caption.Languages))
	case fieldPlatform:
		m.platform = wrap(m.platform+delta, len(caption.Platforms))
	case fieldStyle:
		m.style = wrap(m.style+delta, len(caption.Styles))
	}
}

func (m *Model) nextField(delta int) field {
	last := fieldSubmit
	if len(m.results) > 0 {
		last = fieldResults
	}
	return field(wrap(int(m.focus)+delta, int(last)+1))
}

func (m *Model) setFocus(f field) {
	m.focus = f
	if f == fieldDescription {
		m.description.Focus()
	} else {
		m.description.Blur()
	}
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
