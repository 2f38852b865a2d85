package lookup

import "github.com/alexisbeaulieu97/devfinder/internal/github"

// Status tags the lookup lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "idle"
	}
}

// State is a read-only snapshot of the current lookup. Profile is set only
// for StatusSuccess, Message and Err only for StatusFailure.
type State struct {
	Status  Status
	Query   string
	Profile *github.Profile
	Message string
	Err     error
}

// IsLoading reports whether a request is outstanding.
func (s State) IsLoading() bool { return s.Status == StatusLoading }

// Failed reports whether the last request ended in an error.
func (s State) Failed() bool { return s.Status == StatusFailure }

// Succeeded reports whether a profile is available.
func (s State) Succeeded() bool { return s.Status == StatusSuccess }

func (s State) clone() State {
	s.Profile = s.Profile.Clone()
	return s
}
