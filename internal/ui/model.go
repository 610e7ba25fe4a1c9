package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/logging"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
	"github.com/atomicstack/toolbar-commands/internal/render"
	"github.com/atomicstack/toolbar-commands/internal/session"
	"github.com/atomicstack/toolbar-commands/internal/theme"
	uistate "github.com/atomicstack/toolbar-commands/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	menuHeaderSeparator = " → "
	defaultRootTitle    = "toolbar"
	rootLevelID         = "root"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config wires a Model to its session.
type Config struct {
	Session    *session.Session
	Build      func(*session.Session) []command.Command
	Renderer   *render.Registry
	Translator *i18n.Translator
	Placement  render.Placement
	Title      string
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the toolbar.
type Model struct {
	stack       []*level
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	searching   bool

	filterCursor      cursor.Model
	filterCursorDirty bool
	editor            textinput.Model
	editing           *command.Input

	handlers map[reflect.Type]msgHandler

	sess       *session.Session
	build      func(*session.Session) []command.Command
	renderer   *render.Registry
	tr         *i18n.Translator
	placement  render.Placement
	rootTitle  string
	subscribed map[string]command.ListenerID
	dirty      bool
	fatal      error
}

// NewModel runs the first UI pass and builds the root level.
func NewModel(cfg Config) *Model {
	tr := cfg.Translator
	if tr == nil {
		tr = i18n.English()
	}
	m := &Model{
		sess:       cfg.Session,
		build:      cfg.Build,
		renderer:   cfg.Renderer,
		tr:         tr,
		placement:  cfg.Placement,
		rootTitle:  cfg.Title,
		showFooter: cfg.ShowFooter,
		subscribed: map[string]command.ListenerID{},
	}
	if m.rootTitle == "" {
		m.rootTitle = defaultRootTitle
	}
	if m.renderer == nil {
		m.renderer = render.NewDefaultRegistry(render.Widgets{Translator: tr, Styles: styles})
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.Style = styles.Cursor.Copy()
	c.TextStyle = styles.Filter.Copy()
	c.SetChar(" ")
	m.filterCursor = c
	m.editor = textinput.New()
	m.editor.Prompt = ""
	m.stack = []*level{uistate.NewLevel(rootLevelID, m.rootTitle, nil, nil)}
	if err := m.refresh(); err != nil {
		m.fail(err)
	}
	if root := m.stack[0]; len(root.Items) > 0 {
		root.Cursor = -1
		root.MoveCursorNext(1)
	}
	m.registerHandlers()
	return m
}

// Err returns the fatal error that stopped the model, if any.
func (m *Model) Err() error { return m.fatal }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.fatal != nil {
		return tea.Quit
	}
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleEditor(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.dirty && m.fatal == nil {
		if err := m.refresh(); err != nil {
			m.fail(err)
		}
	}
	if m.fatal != nil {
		return tea.Quit
	}
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) fail(err error) {
	logging.Error(err)
	events.Action.Error(err)
	m.fatal = err
	m.errMsg = err.Error()
}

// markDirty is the listener installed on every displayed command.
func (m *Model) markDirty() { m.dirty = true }

// Close unsubscribes from every command.
func (m *Model) Close() {
	for _, c := range m.sess.Commands() {
		command.Walk(c, func(n command.Command) bool {
			if id, ok := m.subscribed[n.Core().UniqueID()]; ok {
				n.Core().RemoveListener(id)
			}
			return true
		})
	}
	m.subscribed = map[string]command.ListenerID{}
}
