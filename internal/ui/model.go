package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/config"
	"searchbox/internal/domain"
	"searchbox/internal/eventbus"
	"searchbox/internal/ui/logic"
	"searchbox/internal/ui/services/query"
	"searchbox/internal/ui/views"
)

// EventMsg wraps a domain event forwarded from the bus to the program
type EventMsg struct {
	Event eventbus.DomainEvent
}

// helpClosedMsg is returned when the help pager exits
type helpClosedMsg struct {
	err error
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	query  *query.Service

	textInput textinput.Model
	renderer  *views.Renderer
	helpText  string
	helpOps   *HelpOps
	cursor    *logic.Cursor

	// Latest query state snapshot received from the bus. The query
	// service owns the state; the model only renders snapshots.
	state domain.QueryState

	width  int
	height int
}

// NewModel creates the UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, querySvc *query.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "search products"
	ti.Prompt = "" // the prompt is rendered by the view layer
	ti.CharLimit = 128
	ti.Focus()

	return &Model{
		bus:       bus,
		config:    cfg,
		query:     querySvc,
		textInput: ti,
		renderer:  views.NewRenderer(),
		helpText:  NewHelpRenderer().RenderHelpContent(),
		cursor:    logic.NewCursor(),
		state:     querySvc.State(),
	}
}

// SetProgram wires the running program for terminal handover to the
// help pager. Must be called before the program runs.
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		m.query.OnFocusGained()
		return m, nil

	case tea.BlurMsg:
		m.query.OnInputBlur()
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpClosedMsg:
		if msg.err != nil {
			log.Printf("help pager error: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	if sc, ok := event.(eventbus.StateChangedEvent); ok {
		m.state = sc.State
		m.cursor.SetCount(len(m.state.Results))
		if !m.state.DropdownVisible {
			m.cursor.Reset()
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "f1":
		if m.helpOps == nil {
			return m, nil
		}
		return m, func() tea.Msg {
			return helpClosedMsg{err: m.helpOps.ShowHelpInPager(m.helpText)}
		}

	case "esc":
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.query.OnInputChange("")
		} else {
			m.query.OnInputBlur()
		}
		return m, nil

	case "up":
		if m.state.DropdownVisible {
			m.cursor.Up()
		}
		return m, nil

	case "down":
		if m.state.DropdownVisible {
			m.cursor.Down()
		}
		return m, nil

	case "enter":
		idx := m.cursor.Index()
		if m.state.DropdownVisible && idx >= 0 && idx < len(m.state.Results) {
			title := m.state.Results[idx].Title
			m.query.OnResultSelect(title)
			m.textInput.SetValue(title)
			m.textInput.CursorEnd()
		}
		return m, nil
	}

	// Everything else edits the input.
	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if after := m.textInput.Value(); after != before {
		m.query.OnInputChange(after)
	}
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		InputView:      m.textInput.View(),
		Query:          m.state,
		CursorIndex:    m.cursor.Index(),
		ShowPrices:     m.config.UISettings.ShowPrices,
		ShowThumbnails: m.config.UISettings.ShowThumbnails,
	})
}
