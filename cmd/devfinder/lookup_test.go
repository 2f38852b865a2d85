package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const octocatJSON = `{
  "login": "octocat",
  "name": "The Octocat",
  "avatar_url": "https://avatars.githubusercontent.com/u/583231",
  "bio": null,
  "public_repos": 8,
  "followers": 12345,
  "following": 9,
  "location": "San Francisco",
  "html_url": "https://github.com/octocat",
  "twitter_username": null,
  "company": "@github",
  "created_at": "2011-01-25T18:44:36Z"
}`

func newProfileServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(octocatJSON))
		case "/users/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func executeRoot(args ...string) (string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestLookupCommandPrintsPlainCard(t *testing.T) {
	srv := newProfileServer(t)

	stdout, err := executeRoot("lookup", "octocat", "--base-url", srv.URL)
	require.NoError(t, err)

	require.Contains(t, stdout, "The Octocat (@octocat)")
	require.Contains(t, stdout, "Joined 25 Jan 2011")
	require.Contains(t, stdout, "This Profile has no bio")
	require.Contains(t, stdout, "Repos: 8  Followers: 12K  Following: 9")
	require.Contains(t, stdout, "Location: San Francisco")
	require.Contains(t, stdout, "Website:  https://github. <https://github.com/octocat>")
	require.Contains(t, stdout, "Twitter:  Not Available")
	require.Contains(t, stdout, "Company:  @github")
}

func TestLookupCommandReportsNotFound(t *testing.T) {
	srv := newProfileServer(t)

	stdout, err := executeRoot("lookup", "nobody", "--base-url", srv.URL)
	require.Error(t, err)
	require.Equal(t, "Profile Not found!", err.Error())
	require.Empty(t, stdout)
}

func TestLookupCommandCollapsesServerErrors(t *testing.T) {
	srv := newProfileServer(t)

	_, err := executeRoot("lookup", "broken", "--base-url", srv.URL)
	require.Error(t, err)
	require.Equal(t, "Profile Not found!", err.Error())
}

func TestLookupCommandRejectsBlankUsername(t *testing.T) {
	_, err := executeRoot("lookup", "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "username must not be empty")
}

func TestLookupCommandRequiresOneArgument(t *testing.T) {
	_, err := executeRoot("lookup")
	require.Error(t, err)
}

func TestLookupCommandRejectsUnknownTheme(t *testing.T) {
	_, err := executeRoot("lookup", "octocat", "--theme", "sepia")
	require.Error(t, err)
}

func TestLookupCommandReadsConfigFile(t *testing.T) {
	srv := newProfileServer(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "devfinder.yaml")
	content := "base_url: " + srv.URL + "\ndate:\n  locale: fr_FR\n  layout: \"02 January 2006\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stdout, err := executeRoot("lookup", "octocat", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Joined 25 janvier 2011")
}

func TestLookupCommandWritesLogFile(t *testing.T) {
	srv := newProfileServer(t)
	logPath := filepath.Join(t.TempDir(), "devfinder.log")

	_, err := executeRoot("lookup", "nobody", "--base-url", srv.URL, "--log-file", logPath, "--verbose")
	require.Error(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"correlation_id"`)
	require.Contains(t, string(data), `"username":"nobody"`)
}
