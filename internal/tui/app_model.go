// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/models"
)

type screen int

const (
	screenViews screen = iota
	screenCriteria
)

const noticeTTL = 2 * time.Second

// copyToClipboard is replaced in tests; CI machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

// deps are the parts of the sync engine the editor talks to.
type deps struct {
	sessions   service.ViewSessions
	controller service.CriteriaSyncController
	gate       service.DebounceGate
	store      store.LocalCriteriaStore
	// setToken switches the session to another user.
	setToken func(token string)
}

type appModel struct {
	ctx  context.Context
	deps deps

	currentScreen screen
	views         []string
	viewIdx       int
	buildInfo     models.AppBuildInfo

	// session is the mounted view while currentScreen is screenCriteria.
	session  service.ViewSession
	mounting bool
	criteria models.Criteria
	fieldIdx int
	status   models.SyncStatus

	editing bool
	input   textinput.Model
	spinner spinner.Model

	enteringToken bool
	tokenInput    textinput.Model

	notice        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, d deps, views []string, buildInfo models.AppBuildInfo) appModel {
	in := textinput.New()
	in.Placeholder = "field=value1,value2"
	in.Prompt = "› "
	in.CharLimit = 512

	tokenIn := textinput.New()
	tokenIn.Placeholder = "session token"
	tokenIn.Prompt = "token › "
	tokenIn.EchoMode = textinput.EchoPassword
	tokenIn.CharLimit = 4096

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:           ctx,
		deps:          d,
		currentScreen: screenViews,
		views:         views,
		buildInfo:     buildInfo,
		input:         in,
		tokenInput:    tokenIn,
		spinner:       s,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case statusMsg:
		if m.session != nil && msg.ViewName == m.session.ViewName() {
			m.status = models.SyncStatus(msg)
			m.refreshCriteria()
		}
		return m, nil

	case sessionMountedMsg:
		m.mounting = false
		if msg.err != nil {
			m.currentScreen = screenViews
			return m.withError(humanizeServerUnavailableError(msg.err)), nil
		}
		m.session = msg.session
		m.fieldIdx = 0
		m.refreshCriteria()
		m.status = m.deps.controller.Status(msg.session.ViewName())
		return m, nil

	case sessionClosedMsg:
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.withError("copy failed: " + msg.err.Error()), nil
		}
		m.notice = "criteria copied as JSON"
		return m, clearNoticeAfter(noticeTTL)

	case tokenSwitchedMsg:
		m.notice = "session token replaced"
		return m, clearNoticeAfter(noticeTTL)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.enteringToken {
		var cmd tea.Cmd
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			m.setCriteria(nil)
			m.notice = "all filters cleared"
			return m, clearNoticeAfter(noticeTTL)
		case key.Matches(msg, keys.no):
			m.showConfirm = false
		}
		return m, nil
	}

	if m.editing {
		return m.handleEditKey(msg)
	}
	if m.enteringToken {
		return m.handleTokenKey(msg)
	}

	switch m.currentScreen {
	case screenCriteria:
		return m.handleCriteriaKey(msg)
	default:
		return m.handleViewsKey(msg)
	}
}

func (m appModel) handleViewsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.viewIdx > 0 {
			m.viewIdx--
		}
	case key.Matches(msg, keys.down):
		if m.viewIdx < len(m.views)-1 {
			m.viewIdx++
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.token):
		m.enteringToken = true
		m.tokenInput.SetValue("")
		cmd := m.tokenInput.Focus()
		return m, cmd
	case key.Matches(msg, keys.enter):
		if len(m.views) == 0 {
			return m, nil
		}
		m.currentScreen = screenCriteria
		m.mounting = true
		m.criteria = nil
		m.status = models.SyncStatus{ViewName: m.views[m.viewIdx]}
		return m, m.cmdMount(m.views[m.viewIdx])
	}
	return m, nil
}

func (m appModel) handleCriteriaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mounting {
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	fields := sortedFields(m.criteria)

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		cmd := m.cmdClose(m.session)
		m.session = nil
		m.criteria = nil
		m.currentScreen = screenViews
		return m, cmd
	case key.Matches(msg, keys.up):
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
	case key.Matches(msg, keys.down):
		if m.fieldIdx < len(fields)-1 {
			m.fieldIdx++
		}
	case key.Matches(msg, keys.add):
		return m.startEditing("")
	case key.Matches(msg, keys.edit):
		if len(fields) > 0 {
			return m.startEditing(assignmentFor(m.criteria, fields[m.fieldIdx]))
		}
		return m.startEditing("")
	case key.Matches(msg, keys.delete):
		if len(fields) > 0 {
			m.setCriteria(withoutField(m.criteria, fields[m.fieldIdx]))
		}
	case key.Matches(msg, keys.clear):
		if !m.criteria.IsEmpty() {
			m.showConfirm = true
			m.confirm = confirmModel{viewName: m.session.ViewName()}
		}
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.criteria)
	}
	return m, nil
}

func (m appModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		field, values, err := models.ParseAssignment(m.input.Value())
		if err != nil {
			return m.withError(err.Error()), nil
		}
		m.editing = false
		m.input.Blur()
		m.setCriteria(m.criteria.WithField(field, values))
		if idx := indexOf(sortedFields(m.criteria), field); idx >= 0 {
			m.fieldIdx = idx
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleTokenKey reads a new session token. Views are only switched from
// the list, so no view is mounted while the token changes.
func (m appModel) handleTokenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.enteringToken = false
		m.tokenInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		token := strings.TrimSpace(m.tokenInput.Value())
		m.enteringToken = false
		m.tokenInput.SetValue("")
		m.tokenInput.Blur()
		return m, m.cmdSetToken(token)
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

func (m appModel) startEditing(value string) (tea.Model, tea.Cmd) {
	m.editing = true
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

// setCriteria writes c to the local store; the mounted session forwards
// the change to the debounce gate.
func (m *appModel) setCriteria(c models.Criteria) {
	if m.session == nil {
		return
	}
	m.deps.store.Set(m.session.ViewName(), c)
	m.refreshCriteria()
}

func (m *appModel) refreshCriteria() {
	if m.session == nil {
		return
	}
	m.criteria = m.deps.store.Get(m.session.ViewName())
	if n := len(m.criteria); m.fieldIdx >= n {
		m.fieldIdx = max(n-1, 0)
	}
}

func (m appModel) withError(message string) appModel {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: message}
	return m
}

func (m appModel) cmdMount(viewName string) tea.Cmd {
	sessions, ctx := m.deps.sessions, m.ctx
	return func() tea.Msg {
		session, err := sessions.Mount(ctx, viewName)
		return sessionMountedMsg{session: session, err: err}
	}
}

// cmdClose sends the view's waiting edit right away instead of dropping it
// with the debounce window, then unmounts.
func (m appModel) cmdClose(session service.ViewSession) tea.Cmd {
	if session == nil {
		return nil
	}
	gate := m.deps.gate
	return func() tea.Msg {
		if gate.Pending(session.ViewName()) {
			gate.Flush(session.ViewName())
		}
		session.Close()
		return sessionClosedMsg{}
	}
}

func (m appModel) cmdSetToken(token string) tea.Cmd {
	setToken := m.deps.setToken
	return func() tea.Msg {
		setToken(token)
		return tokenSwitchedMsg{}
	}
}

func cmdCopy(c models.Criteria) tea.Cmd {
	return func() tea.Msg {
		text, err := criteriaJSON(c)
		if err == nil {
			err = copyToClipboard(text)
		}
		return copiedMsg{err: err}
	}
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var page string
	switch m.currentScreen {
	case screenCriteria:
		page = m.criteriaView()
	default:
		page = m.viewsView()
	}

	switch {
	case m.showError:
		return page + "\n" + m.errorOverlay.View()
	case m.showConfirm:
		return page + "\n" + m.confirm.View()
	}
	return page
}

func (m appModel) viewsView() string {
	var b strings.Builder
	for i, view := range m.views {
		badge := statusBadge(m.deps.controller.Status(view))
		line := fmt.Sprintf("%s %s", badge, view)
		if i == m.viewIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.enteringToken {
		b.WriteString("\n" + m.tokenInput.View() + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + helpStyle.Render(m.notice))
	}

	hotKeys := "enter open  t switch token  v about  q quit"
	if m.enteringToken {
		hotKeys = "enter apply  esc cancel"
	}
	return renderPage("VIEWS", b.String(), hotKeys)
}

func (m appModel) criteriaView() string {
	title := "VIEW " + m.status.ViewName

	if m.mounting {
		return renderPage(title, m.spinner.View()+" loading saved filters...", "q quit")
	}

	var b strings.Builder
	b.WriteString(renderCriteria(m.criteria, m.fieldIdx))
	b.WriteString("\n")
	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	waiting := m.session != nil && m.deps.gate.Pending(m.session.ViewName())
	b.WriteString(renderStatus(m.status, waiting, m.spinner.View()))
	if m.notice != "" {
		b.WriteString("\n" + helpStyle.Render(m.notice))
	}

	hotKeys := "a add  e edit  d delete field  x clear  y copy JSON  esc back  q quit"
	if m.editing {
		hotKeys = "enter apply  esc cancel  (field= removes the field)"
	}
	return renderPage(title, b.String(), hotKeys)
}

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}
