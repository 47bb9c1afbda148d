// Package tui runs the registration form in the terminal.
//
// The form.Form owned by the controller is the source of truth: every edit
// is written through to it, and the widgets are re-read from it whenever a
// handler finishes (lookup results, reset after a successful save).
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cadastro/internal/controller"
	"cadastro/internal/form"
)

type handlerKind int

const (
	handlerLookup handlerKind = iota
	handlerSubmit
)

type handlerDoneMsg struct {
	kind handlerKind
}

type row struct {
	field   form.Field
	input   textinput.Model
	option  int
	checked bool
}

type Model struct {
	ctx    context.Context
	ctrl   *controller.Controller
	form   *form.Form
	alerts <-chan string

	rows    []row
	focus   int // len(rows) is the send button
	offset  int
	queue   []string
	pending map[handlerKind]int

	width  int
	height int
}

func New(ctx context.Context, ctrl *controller.Controller, alerts *ChannelAlerter) Model {
	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		form:    ctrl.Form(),
		alerts:  alerts.ch,
		pending: make(map[handlerKind]int),
		height:  24,
	}

	for _, fd := range m.form.Fields() {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 40
		m.rows = append(m.rows, row{field: fd, input: ti})
	}
	m.syncFromForm()
	if len(m.rows) > 0 && m.rows[0].field.Kind == form.KindText {
		m.rows[0].input.Focus()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForAlert(m.alerts))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureFocusVisible()
		return m, nil

	case alertMsg:
		m.queue = append(m.queue, string(msg))
		return m, waitForAlert(m.alerts)

	case handlerDoneMsg:
		m.pending[msg.kind]--
		m.syncFromForm()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		if len(m.queue) > 0 {
			if key.Matches(msg, keys.Dismiss) {
				m.queue = m.queue[1:]
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Submit):
		return m, m.submit()
	case key.Matches(msg, keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, keys.Enter):
		if m.onButton() {
			return m, m.submit()
		}
		return m.moveFocus(1)
	}

	if m.onButton() {
		return m, nil
	}

	r := &m.rows[m.focus]
	switch r.field.Kind {
	case form.KindSelect:
		switch {
		case key.Matches(msg, keys.Left):
			m.cycleOption(r, -1)
		case key.Matches(msg, keys.Right):
			m.cycleOption(r, 1)
		}
		return m, nil
	case form.KindCheckbox:
		if key.Matches(msg, keys.Toggle) {
			r.checked = !r.checked
			_ = m.form.SetChecked(r.field.ID, r.checked)
		}
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.onButton() || m.rows[m.focus].field.Kind != form.KindText {
		return nil
	}
	r := &m.rows[m.focus]
	before := r.input.Value()
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	// a handler may have changed the form since the widget was last synced
	if v := r.input.Value(); v != before {
		_ = m.form.Set(r.field.ID, v)
	}
	return cmd
}

func (m *Model) cycleOption(r *row, delta int) {
	n := len(r.field.Options)
	if n == 0 {
		return
	}
	r.option = (r.option + delta + n) % n
	_ = m.form.Set(r.field.ID, r.field.Options[r.option].Value)
}

func (m Model) onButton() bool {
	return m.focus >= len(m.rows)
}

// moveFocus cycles through the rows and the send button. Leaving the CEP
// field is its blur event.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	total := len(m.rows) + 1

	if !m.onButton() {
		r := &m.rows[m.focus]
		r.input.Blur()
		if r.field.ID == form.FieldCEP {
			cmds = append(cmds, m.run(handlerLookup))
		}
	}

	m.focus = (m.focus + delta + total) % total
	if !m.onButton() && m.rows[m.focus].field.Kind == form.KindText {
		cmds = append(cmds, m.rows[m.focus].input.Focus())
	}
	m.ensureFocusVisible()

	return m, tea.Batch(cmds...)
}

func (m Model) submit() tea.Cmd {
	return m.run(handlerSubmit)
}

// run starts a handler off the UI loop. pending is a map so the returned
// copy of the model shares the counter with the one that will receive
// handlerDoneMsg.
func (m Model) run(kind handlerKind) tea.Cmd {
	m.pending[kind]++
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		switch kind {
		case handlerLookup:
			ctrl.HandleCEPBlur(ctx)
		case handlerSubmit:
			ctrl.HandleSubmit(ctx)
		}
		return handlerDoneMsg{kind: kind}
	}
}

func (m *Model) syncFromForm() {
	for i := range m.rows {
		r := &m.rows[i]
		switch r.field.Kind {
		case form.KindText:
			v, _ := m.form.Value(r.field.ID)
			if r.input.Value() != v {
				r.input.SetValue(v)
			}
		case form.KindSelect:
			v, _ := m.form.Value(r.field.ID)
			r.option = 0
			for j, opt := range r.field.Options {
				if opt.Value == v {
					r.option = j
					break
				}
			}
		case form.KindCheckbox:
			r.checked, _ = m.form.Checked(r.field.ID)
		}
	}
}

func (m Model) visibleRows() int {
	// title, status, button, help and margins
	n := m.height - 8
	if n < 3 {
		n = 3
	}
	return n
}

func (m *Model) ensureFocusVisible() {
	visible := m.visibleRows()
	focus := m.focus
	if focus >= len(m.rows) {
		focus = len(m.rows) - 1
	}
	if focus < m.offset {
		m.offset = focus
	}
	if focus >= m.offset+visible {
		m.offset = focus - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	if len(m.queue) > 0 {
		return m.alertView(m.queue[0])
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Cadastro de parceiro"))
	b.WriteString("\n")

	end := m.offset + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.rowView(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.onButton() {
		b.WriteString(focusedButtonStyle.Render("Enviar"))
	} else {
		b.WriteString(buttonStyle.Render("Enviar"))
	}
	b.WriteString("\n")

	if status := m.status(); status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab/↓ next • shift+tab/↑ previous • ←/→ option • ctrl+s send • esc quit"))
	return b.String()
}

func (m Model) rowView(i int) string {
	r := m.rows[i]
	label := labelStyle
	cursor := "  "
	if i == m.focus {
		label = focusedLabelStyle
		cursor = "> "
	}

	var value string
	switch r.field.Kind {
	case form.KindText:
		value = r.input.View()
	case form.KindSelect:
		if len(r.field.Options) > 0 {
			value = "‹ " + r.field.Options[r.option].Label + " ›"
		}
	case form.KindCheckbox:
		value = "[ ]"
		if r.checked {
			value = "[x]"
		}
	}
	return cursor + label.Render(r.field.Label) + value
}

func (m Model) status() string {
	var parts []string
	if m.pending[handlerLookup] > 0 {
		parts = append(parts, "Buscando CEP...")
	}
	if m.pending[handlerSubmit] > 0 {
		parts = append(parts, "Enviando cadastro...")
	}
	return strings.Join(parts, " ")
}

func (m Model) alertView(message string) string {
	style := alertStyle
	if strings.HasPrefix(message, "Erro") {
		style = alertFailureStyle
	}
	box := style.Render(message + "\n\n" + helpStyle.Render("enter: ok"))
	if m.width == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the program and blocks until the user quits. Handlers still in
// flight after that drop their alerts.
func Run(ctx context.Context, ctrl *controller.Controller, alerts *ChannelAlerter) error {
	defer alerts.Close()
	p := tea.NewProgram(New(ctx, ctrl, alerts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
