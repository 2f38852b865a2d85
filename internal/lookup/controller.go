// Package lookup owns the request lifecycle of a profile search:
// idle, loading, then success or failure.
package lookup

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/devfinder/internal/github"
	"github.com/alexisbeaulieu97/devfinder/internal/logger"
	devfindererrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

// fallbackMessage is shown when an error carries no text of its own.
const fallbackMessage = "error occured"

// Request describes one outbound profile fetch.
type Request struct {
	Seq           uint64
	Query         string
	CorrelationID string

	ctx context.Context
}

// Context is cancelled once the request is superseded or the controller closes.
func (r Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// Response is the outcome of executing a Request.
type Response struct {
	Seq           uint64
	Query         string
	CorrelationID string
	Profile       *github.Profile
	Err           error
}

// Options configures a Controller.
type Options struct {
	// Parent bounds every request context. Defaults to context.Background.
	Parent context.Context
	Logger *logger.Logger
	// NewID generates correlation ids. Defaults to uuid.NewString.
	NewID func() string
}

// Controller is the single owner and mutator of the lookup State. Only the
// response to the most recently issued request is ever applied. It is not
// safe for concurrent use; callers drive it from one event loop.
type Controller struct {
	state  State
	seq    uint64
	cancel context.CancelFunc
	parent context.Context
	logger *logger.Logger
	newID  func() string
}

// NewController returns a controller in the idle state.
func NewController(opts Options) *Controller {
	parent := opts.Parent
	if parent == nil {
		parent = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Controller{
		state:  State{Status: StatusIdle},
		parent: parent,
		logger: log,
		newID:  newID,
	}
}

// Submit starts a lookup for query. Blank queries are ignored and leave the
// state untouched. Otherwise the state moves to loading before Submit
// returns, any previous record or error is dropped, and a superseded request
// is cancelled.
func (c *Controller) Submit(query string) (Request, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Request{}, false
	}

	if c.cancel != nil {
		c.cancel()
	}

	c.seq++
	ctx, cancel := context.WithCancel(c.parent)
	c.cancel = cancel

	req := Request{
		Seq:           c.seq,
		Query:         q,
		CorrelationID: c.newID(),
		ctx:           ctx,
	}
	c.state = State{Status: StatusLoading, Query: q}

	c.logger.WithRequest(req.Query, req.CorrelationID, req.Seq).Info("profile lookup started")
	return req, true
}

// Resolve applies resp when it answers the latest request still loading.
// Responses to superseded or already resolved requests are dropped and
// Resolve reports false.
func (c *Controller) Resolve(resp Response) bool {
	log := c.logger.WithRequest(resp.Query, resp.CorrelationID, resp.Seq)

	if resp.Seq != c.seq || c.state.Status != StatusLoading {
		log.WithFields(map[string]any{"latest_seq": c.seq}).Debug("dropping stale profile response")
		return false
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if resp.Err != nil {
		c.state = State{
			Status:  StatusFailure,
			Query:   c.state.Query,
			Message: FailureMessage(resp.Err),
			Err:     resp.Err,
		}
		var requestErr *devfindererrors.RequestError
		if errors.As(resp.Err, &requestErr) {
			log = log.WithFields(map[string]any{
				"status":    requestErr.StatusCode,
				"not_found": requestErr.NotFound(),
			})
		}
		log.Warn(resp.Err, "profile lookup failed")
		return true
	}

	profile := resp.Profile
	if profile == nil {
		profile = &github.Profile{}
	}
	c.state = State{
		Status:  StatusSuccess,
		Query:   c.state.Query,
		Profile: profile,
	}
	log.Info("profile lookup succeeded")
	return true
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	return c.state.clone()
}

// Close cancels any in-flight request. The state is left as is.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Execute performs req against fetcher and packages the outcome. It blocks
// until the fetch finishes or the request context is cancelled.
func Execute(req Request, fetcher github.ProfileFetcher) Response {
	resp := Response{
		Seq:           req.Seq,
		Query:         req.Query,
		CorrelationID: req.CorrelationID,
	}
	if fetcher == nil {
		resp.Err = errors.New("no profile fetcher configured")
		return resp
	}
	resp.Profile, resp.Err = fetcher.FetchProfile(req.Context(), req.Query)
	return resp
}

// FailureMessage is the text shown in place of the profile for err.
// Every non-2xx response reads "Profile Not found"; transport failures pass
// their own message through.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var requestErr *devfindererrors.RequestError
	if errors.As(err, &requestErr) {
		return devfindererrors.ProfileNotFoundMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}
