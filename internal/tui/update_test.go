package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

func newTestModel(f *fakeFetcher) Model {
	return NewModel(Options{Fetcher: f})
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(&fakeFetcher{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, maxContentWidth, m.contentWidth())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, 26, m.contentWidth())
	assert.Equal(t, 10, m.input.Width)
}

func TestNewModel_SizesInputBeforeFirstResize(t *testing.T) {
	m := newTestModel(&fakeFetcher{})

	assert.Equal(t, maxContentWidth-16, m.input.Width)
	assert.Contains(t, m.View(), inputPlaceholder)
}

func TestUpdate_EnterSubmitsAndClearsInput(t *testing.T) {
	f := &fakeFetcher{profiles: map[string]string{"octocat": `{"login":"octocat"}`}}
	m := typeText(t, newTestModel(f), "octocat")
	assert.Equal(t, "octocat", m.Query())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.Query(), "input resets after a submission")
	assert.Equal(t, lookup.StatusLoading, m.State().Status, "loading before any response arrives")
	assert.Empty(t, f.calls, "fetch runs inside the command")

	m, _ = update(t, m, fetched(t, cmd))
	assert.Equal(t, lookup.StatusSuccess, m.State().Status)
	assert.Equal(t, []string{"octocat"}, f.calls)
}

func TestUpdate_EnterWithBlankInputIsIgnored(t *testing.T) {
	m := typeText(t, newTestModel(&fakeFetcher{}), "   ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, lookup.StatusIdle, m.State().Status)
	assert.Equal(t, "   ", m.Query())
}

func TestUpdate_FailureAfterSuccess(t *testing.T) {
	f := &fakeFetcher{
		profiles: map[string]string{"octocat": `{"login":"octocat","name":"The Octocat"}`},
		statuses: map[string]int{"broken": 500},
	}
	m := newTestModel(f)

	m, cmd := update(t, m, SubmitMsg{Query: "octocat"})
	m, _ = update(t, m, fetched(t, cmd))
	require.True(t, m.State().Succeeded())

	m, cmd = update(t, m, SubmitMsg{Query: "broken"})
	m, _ = update(t, m, fetched(t, cmd))

	state := m.State()
	assert.Equal(t, lookup.StatusFailure, state.Status)
	assert.Equal(t, "Profile Not found", state.Message)
	assert.Nil(t, state.Profile)
}

func TestUpdate_StaleResponseIsIgnored(t *testing.T) {
	f := &fakeFetcher{profiles: map[string]string{
		"slow": `{"login":"slow"}`,
		"fast": `{"login":"fast"}`,
	}}
	m := newTestModel(f)

	m, slowCmd := update(t, m, SubmitMsg{Query: "slow"})
	m, fastCmd := update(t, m, SubmitMsg{Query: "fast"})

	m, _ = update(t, m, fetched(t, fastCmd))
	m, _ = update(t, m, fetched(t, slowCmd))

	state := m.State()
	require.True(t, state.Succeeded())
	assert.Equal(t, "fast", *state.Profile.Login)
}

func TestUpdate_ToggleTheme(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	assert.Equal(t, theme.Light, m.ThemeMode())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.Light, m.ThemeMode())
	require.Equal(t, []tea.Msg{ToggleThemeMsg{}}, collect(cmd))

	m, _ = update(t, m, ToggleThemeMsg{})
	assert.Equal(t, theme.Dark, m.ThemeMode())
	assert.Equal(t, theme.DarkPalette(), m.styles.Palette())

	m, _ = update(t, m, ToggleThemeMsg{})
	assert.Equal(t, theme.Light, m.ThemeMode())
}

func TestUpdate_ToggleThemeDoesNotTouchRequestState(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m, _ = update(t, m, SubmitMsg{Query: "octocat"})

	m, _ = update(t, m, ToggleThemeMsg{})
	assert.True(t, m.State().IsLoading())
}

func TestUpdate_EscClearsInput(t *testing.T) {
	m := typeText(t, newTestModel(&fakeFetcher{}), "octo")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.Query())
}

func TestUpdate_CtrlCQuitsAndCancels(t *testing.T) {
	m := newTestModel(&fakeFetcher{profiles: map[string]string{"octocat": `{}`}})
	m, fetchCmd := update(t, m, SubmitMsg{Query: "octocat"})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	resp := fetched(t, fetchCmd)
	assert.Error(t, resp.Response.Err, "in-flight request is cancelled on quit")
}

func TestUpdate_SpinnerOnlyTicksWhileLoading(t *testing.T) {
	m := newTestModel(&fakeFetcher{})

	_, cmd := update(t, m, spinner.TickMsg{})
	assert.Nil(t, cmd)

	m, _ = update(t, m, SubmitMsg{Query: "octocat"})
	_, cmd = update(t, m, m.spinner.Tick())
	assert.NotNil(t, cmd)
}

func TestInitSubmitsInitialQuery(t *testing.T) {
	f := &fakeFetcher{profiles: map[string]string{"octocat": `{"login":"octocat"}`}}
	m := NewModel(Options{Fetcher: f, InitialQuery: "octocat"})

	var submit *SubmitMsg
	for _, msg := range collect(m.Init()) {
		if s, ok := msg.(SubmitMsg); ok {
			submit = &s
		}
	}
	require.NotNil(t, submit)
	assert.Equal(t, "octocat", submit.Query)

	m, cmd := update(t, m, *submit)
	m, _ = update(t, m, fetched(t, cmd))
	assert.True(t, m.State().Succeeded())
}
