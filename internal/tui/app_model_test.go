// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-filter-keeper/internal/mock"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// fakeSessions mounts views without touching the network. The store
// subscription of a real session is left out; tests read the store directly.
type fakeSessions struct {
	ctrl    *gomock.Controller
	err     error
	mounted []string
	closed  []string
}

func (f *fakeSessions) Mount(_ context.Context, viewName string) (service.ViewSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mounted = append(f.mounted, viewName)

	s := mock.NewMockViewSession(f.ctrl)
	s.EXPECT().ViewName().Return(viewName).AnyTimes()
	s.EXPECT().Close().Do(func() { f.closed = append(f.closed, viewName) }).MaxTimes(1)
	return s, nil
}

type testModel struct {
	m        appModel
	sessions *fakeSessions
	gate     *mock.MockDebounceGate
	store    store.LocalCriteriaStore
	tokens   []string
}

func newTestModel(t *testing.T, views ...string) *testModel {
	t.Helper()
	ctrl := gomock.NewController(t)

	controller := mock.NewMockCriteriaSyncController(ctrl)
	controller.EXPECT().Status(gomock.Any()).DoAndReturn(func(view string) models.SyncStatus {
		return models.SyncStatus{ViewName: view, HasLoadedFromRemote: true}
	}).AnyTimes()

	gate := mock.NewMockDebounceGate(ctrl)

	tm := &testModel{
		sessions: &fakeSessions{ctrl: ctrl},
		gate:     gate,
		store:    store.NewLocalCriteriaStore(),
	}
	tm.m = newAppModel(context.Background(), deps{
		sessions:   tm.sessions,
		controller: controller,
		gate:       gate,
		store:      tm.store,
		setToken:   func(token string) { tm.tokens = append(tm.tokens, token) },
	}, views, models.NewAppBuildInfo("1.0.0", "", ""))

	return tm
}

// send feeds msg to the model and runs the returned command once, feeding
// its message back as well. Ticks are not followed.
func (tm *testModel) send(msg tea.Msg) tea.Cmd {
	next, cmd := tm.m.Update(msg)
	tm.m = next.(appModel)
	return cmd
}

func (tm *testModel) press(keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		tm.send(msg)
	}
}

// open selects the view at idx and completes its mount.
func (tm *testModel) open(t *testing.T, idx int) {
	t.Helper()
	for i := 0; i < idx; i++ {
		tm.press("down")
	}
	cmd := tm.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, tm.m.mounting)

	tm.send(cmd())
	require.False(t, tm.m.mounting)
}

// ─────────────────────────────────────────────
// Views screen
// ─────────────────────────────────────────────

func TestViews_OpenMountsSelectedView(t *testing.T) {
	tm := newTestModel(t, "contacts", "orders")
	tm.store.Seed("orders", models.Criteria{"status": []any{"open"}})

	tm.open(t, 1)

	assert.Equal(t, []string{"orders"}, tm.sessions.mounted)
	assert.Equal(t, screenCriteria, tm.m.currentScreen)
	assert.True(t, tm.m.criteria.Equal(models.Criteria{"status": []string{"open"}}))
	assert.Equal(t, "orders", tm.m.status.ViewName)
}

func TestViews_MountErrorReturnsToList(t *testing.T) {
	tm := newTestModel(t, "contacts")
	tm.sessions.err = errors.New("dial tcp 127.0.0.1:8080: connection refused")

	cmd := tm.send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.send(cmd())

	assert.Equal(t, screenViews, tm.m.currentScreen)
	assert.True(t, tm.m.showError)
	assert.Contains(t, tm.m.errorOverlay.message, "unreachable")

	tm.press("esc")
	assert.False(t, tm.m.showError)
}

func TestViews_CursorStaysInRange(t *testing.T) {
	tm := newTestModel(t, "a", "b")

	tm.press("up", "down", "down", "down")
	assert.Equal(t, 1, tm.m.viewIdx)

	tm.press("up", "up")
	assert.Equal(t, 0, tm.m.viewIdx)
}

func TestViews_BuildInfoToggle(t *testing.T) {
	tm := newTestModel(t, "contacts")

	tm.press("v")
	assert.True(t, tm.m.showBuildInfo)
	assert.Contains(t, tm.m.View(), "1.0.0")

	tm.press("esc")
	assert.False(t, tm.m.showBuildInfo)
}

func TestViews_SwitchToken(t *testing.T) {
	tm := newTestModel(t, "contacts")

	tm.press("t")
	require.True(t, tm.m.enteringToken)
	assert.Contains(t, tm.m.View(), "esc cancel")

	// keys bound on the list go to the input while typing
	tm.press(" user-2-token q ")
	assert.True(t, tm.m.enteringToken)
	assert.NotContains(t, tm.m.View(), "user-2-token", "token is masked")

	cmd := tm.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, tm.m.enteringToken)

	tm.send(cmd())
	assert.Equal(t, []string{"user-2-token q"}, tm.tokens)
	assert.Equal(t, "session token replaced", tm.m.notice)
}

func TestViews_SwitchTokenCancel(t *testing.T) {
	tm := newTestModel(t, "contacts")

	tm.press("t", "abc", "esc")
	assert.False(t, tm.m.enteringToken)
	assert.Empty(t, tm.tokens)
	assert.Equal(t, screenViews, tm.m.currentScreen)
}

// ─────────────────────────────────────────────
// Criteria screen
// ─────────────────────────────────────────────

func TestCriteria_AddEditAndDeleteFields(t *testing.T) {
	tm := newTestModel(t, "contacts")
	tm.gate.EXPECT().Pending("contacts").Return(false).AnyTimes()
	tm.open(t, 0)

	tm.press("a", "name=Anna, Bob", "enter")
	assert.True(t, tm.store.Get("contacts").Equal(models.Criteria{"name": []string{"Anna", "Bob"}}))
	assert.False(t, tm.m.editing)

	tm.press("a", "city=Kazan", "enter")
	assert.Equal(t, []string{"city", "name"}, sortedFields(tm.store.Get("contacts")))
	assert.Equal(t, 0, tm.m.fieldIdx, "cursor follows the edited field")

	// "d" removes the field under the cursor.
	tm.press("d")
	assert.True(t, tm.store.Get("contacts").Equal(models.Criteria{"name": []string{"Anna", "Bob"}}))

	// "field=" removes the field as well.
	tm.press("e")
	assert.Equal(t, "name=Anna,Bob", tm.m.input.Value())
	tm.m.input.SetValue("name=")
	tm.press("enter")
	assert.True(t, tm.store.Get("contacts").IsEmpty())

	assert.Contains(t, tm.m.View(), "no filters set")
}

func TestCriteria_InvalidInputShowsError(t *testing.T) {
	tm := newTestModel(t, "contacts")
	tm.open(t, 0)

	tm.press("a", "no equals sign", "enter")

	assert.True(t, tm.m.showError)
	assert.True(t, tm.m.editing, "input stays open after an error")
	assert.True(t, tm.store.Get("contacts").IsEmpty())
}

func TestCriteria_ClearAllAsksForConfirmation(t *testing.T) {
	tm := newTestModel(t, "contacts")
	tm.store.Seed("contacts", models.Criteria{"a": []any{"1"}, "b": []any{"2"}})
	tm.open(t, 0)

	tm.press("x")
	require.True(t, tm.m.showConfirm)
	tm.press("n")
	assert.False(t, tm.m.showConfirm)
	assert.False(t, tm.store.Get("contacts").IsEmpty())

	tm.press("x", "y")
	assert.False(t, tm.m.showConfirm)
	assert.True(t, tm.store.Get("contacts").IsEmpty())
}

func TestCriteria_CopyAsJSON(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	tm := newTestModel(t, "contacts")
	tm.store.Seed("contacts", models.Criteria{"name": []any{"Anna"}})
	tm.open(t, 0)

	cmd := tm.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	tm.send(cmd())

	assert.JSONEq(t, `{"name":["Anna"]}`, copied)
	assert.Equal(t, "criteria copied as JSON", tm.m.notice)

	tm.send(clearNoticeMsg{})
	assert.Empty(t, tm.m.notice)
}

func TestCriteria_StatusUpdatesRefreshPanel(t *testing.T) {
	tm := newTestModel(t, "contacts")
	tm.gate.EXPECT().Pending("contacts").Return(false).AnyTimes()
	tm.open(t, 0)

	// The controller seeded the store and reports the record.
	tm.store.Seed("contacts", models.Criteria{"name": []any{"Anna"}})
	tm.send(statusMsg(models.SyncStatus{ViewName: "contacts", LastKnownRemoteID: "rec-1", HasLoadedFromRemote: true}))

	assert.Equal(t, "rec-1", tm.m.status.LastKnownRemoteID)
	assert.True(t, tm.m.criteria.Equal(models.Criteria{"name": []string{"Anna"}}))
	assert.Contains(t, tm.m.View(), "id rec-1")

	// Status of another view is ignored.
	tm.send(statusMsg(models.SyncStatus{ViewName: "orders", LastError: "boom"}))
	assert.Empty(t, tm.m.status.LastError)
}

func TestCriteria_LeavingFlushesPendingEdits(t *testing.T) {
	tm := newTestModel(t, "contacts")
	tm.open(t, 0)

	gomock.InOrder(
		tm.gate.EXPECT().Pending("contacts").Return(true),
		tm.gate.EXPECT().Flush("contacts"),
	)

	cmd := tm.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenViews, tm.m.currentScreen)
	assert.Nil(t, tm.m.session)

	require.NotNil(t, cmd)
	tm.send(cmd())
	assert.Equal(t, []string{"contacts"}, tm.sessions.closed)
}

func TestCriteria_Quit(t *testing.T) {
	tm := newTestModel(t, "contacts")
	tm.open(t, 0)

	cmd := tm.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
