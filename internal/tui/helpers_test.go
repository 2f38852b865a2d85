package tui

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devfinder/internal/github"
	devfindererrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

// fakeFetcher answers from a map of canned bodies; unknown users get a 404.
type fakeFetcher struct {
	mu       sync.Mutex
	profiles map[string]string
	statuses map[string]int
	calls    []string
}

func (f *fakeFetcher) FetchProfile(ctx context.Context, username string) (*github.Profile, error) {
	f.mu.Lock()
	f.calls = append(f.calls, username)
	body, ok := f.profiles[username]
	status := f.statuses[username]
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, devfindererrors.NewTransportError(username, err)
	}
	if status != 0 {
		return nil, devfindererrors.NewRequestError(username, status)
	}
	if !ok {
		return nil, devfindererrors.NewRequestError(username, 404)
	}
	var p github.Profile
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, devfindererrors.NewDecodeError(username, err)
	}
	return &p, nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func fetched(t *testing.T, cmd tea.Cmd) ProfileFetchedMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if f, ok := msg.(ProfileFetchedMsg); ok {
			return f
		}
	}
	t.Fatal("command produced no ProfileFetchedMsg")
	return ProfileFetchedMsg{}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}
