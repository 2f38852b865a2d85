// Package presenter maps a possibly partial profile onto display-safe strings.
// It is the only place fallbacks, clamps and count abbreviations are decided.
package presenter

import (
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/alexisbeaulieu97/devfinder/internal/github"
)

const (
	PlaceholderAvatar = "/image-avatar.png"
	PlaceholderName   = "Octocat"
	PlaceholderHandle = "octocat"
	NoBio             = "This Profile has no bio"
	NotAvailable      = "Not Available"

	// PlaceholderCount is shown for a missing statistic.
	PlaceholderCount = "8"

	// MaxLinkRunes clamps location, homepage, social handle and organization.
	MaxLinkRunes = 15

	// abbreviateAbove is the decimal length beyond which counts get a K suffix.
	abbreviateAbove = 4

	twitterBaseURL = "https://twitter.com/"
)

// PlaceholderJoined is the creation date shown when the record carries none
// or carries one that does not parse.
var PlaceholderJoined = time.Date(2011, time.January, 25, 0, 0, 0, 0, time.UTC)

// joinedLayouts are tried in order against created_at.
var joinedLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Options controls date rendering.
type Options struct {
	Locale   string
	Layout   string
	Location *time.Location
}

// DefaultOptions renders dates as "25 Jan 2011" in UTC.
func DefaultOptions() Options {
	return Options{
		Locale:   string(monday.LocaleEnGB),
		Layout:   "02 Jan 2006",
		Location: time.UTC,
	}
}

// Link is a clamped label plus an optional target. Available is false when
// the source field was absent; URL is then empty and the link disabled.
type Link struct {
	Text      string
	URL       string
	Available bool
}

// Card holds every display string for one profile.
type Card struct {
	AvatarURL string
	Name      string
	Handle    string
	Joined    string
	Bio       string

	Repos     string
	Followers string
	Following string

	Location Link
	Website  Link
	Twitter  Link
	Company  Link
}

// Present builds the card for record. A nil record yields the placeholder card.
func Present(record *github.Profile, opts Options) Card {
	if record == nil {
		record = &github.Profile{}
	}

	card := Card{
		AvatarURL: orDefault(record.AvatarURL, PlaceholderAvatar),
		Name:      orDefault(record.Name, PlaceholderName),
		Handle:    orDefault(record.Login, PlaceholderHandle),
		Joined:    FormatJoined(record.CreatedAt, opts),
		Bio:       orDefault(record.Bio, NoBio),
		Repos:     formatCount(record.PublicRepos),
		Followers: formatCount(record.Followers),
		Following: formatCount(record.Following),
		Location:  link(record.Location, ""),
		Website:   link(record.HTMLURL, valueOf(record.HTMLURL)),
		Company:   link(record.Company, ""),
	}

	twitterURL := ""
	if present(record.TwitterUsername) {
		twitterURL = twitterBaseURL + strings.TrimPrefix(strings.TrimSpace(*record.TwitterUsername), "@")
	}
	card.Twitter = link(record.TwitterUsername, twitterURL)

	return card
}

// Placeholder is the card shown before any lookup succeeds.
func Placeholder(opts Options) Card {
	return Present(nil, opts)
}

// FormatJoined renders the raw created_at value. Missing, blank or
// unparseable values render the placeholder date.
func FormatJoined(created *string, opts Options) string {
	when, ok := ParseJoined(created)
	if !ok {
		when = PlaceholderJoined
	}
	return FormatDate(when, opts)
}

// ParseJoined reads created_at as an RFC 3339 timestamp or a plain date.
func ParseJoined(created *string) (time.Time, bool) {
	if !present(created) {
		return time.Time{}, false
	}
	raw := strings.TrimSpace(*created)
	for _, layout := range joinedLayouts {
		if when, err := time.Parse(layout, raw); err == nil {
			return when, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders when in the configured locale, layout and zone.
func FormatDate(when time.Time, opts Options) string {
	defaults := DefaultOptions()
	if opts.Layout == "" {
		opts.Layout = defaults.Layout
	}
	if opts.Locale == "" {
		opts.Locale = defaults.Locale
	}
	if opts.Location != nil {
		when = when.In(opts.Location)
	} else {
		when = when.In(defaults.Location)
	}

	return monday.Format(when, opts.Layout, monday.Locale(opts.Locale))
}

// abbreviate keeps the first two characters and appends K once the text is
// longer than four characters. It truncates, never rounds:
// 123456 -> "12K", 19999 -> "19K".
func abbreviate(s string) string {
	runes := []rune(s)
	if len(runes) > abbreviateAbove {
		return string(runes[:2]) + "K"
	}
	return s
}

// Clamp returns at most limit runes of s. The input is not modified.
func Clamp(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// formatCount abbreviates the count as received. Quoted numbers and other
// literals are shown as their text.
func formatCount(c *github.Count) string {
	if c == nil {
		return PlaceholderCount
	}
	text := strings.TrimSpace(string(*c))
	if text == "" {
		return PlaceholderCount
	}
	return abbreviate(text)
}

func link(value *string, target string) Link {
	if !present(value) {
		return Link{Text: NotAvailable}
	}
	return Link{
		Text:      Clamp(*value, MaxLinkRunes),
		URL:       target,
		Available: true,
	}
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func orDefault(s *string, fallback string) string {
	if !present(s) {
		return fallback
	}
	return *s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
