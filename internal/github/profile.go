package github

import (
	"bytes"
	"encoding/json"
)

// Profile is the public profile record returned by GET /users/{username}.
// Every field is optional; absence and JSON null both decode to nil.
// created_at and the counts are kept as received so one odd value never
// rejects the whole record.
type Profile struct {
	Login           *string `json:"login"`
	Name            *string `json:"name"`
	AvatarURL       *string `json:"avatar_url"`
	Bio             *string `json:"bio"`
	PublicRepos     *Count  `json:"public_repos"`
	Followers       *Count  `json:"followers"`
	Following       *Count  `json:"following"`
	Location        *string `json:"location"`
	HTMLURL         *string `json:"html_url"`
	TwitterUsername *string `json:"twitter_username"`
	Company         *string `json:"company"`
	CreatedAt       *string `json:"created_at"`
}

// Count is a numeric field stored as its JSON text. A quoted value is
// unquoted; any other literal is kept verbatim.
type Count string

// UnmarshalJSON accepts numbers, strings and any other JSON literal.
func (c *Count) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*c = Count(s)
		return nil
	}
	*c = Count(raw)
	return nil
}

// Clone returns a deep copy so snapshots never alias the stored record.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		Login:           cloneString(p.Login),
		Name:            cloneString(p.Name),
		AvatarURL:       cloneString(p.AvatarURL),
		Bio:             cloneString(p.Bio),
		PublicRepos:     cloneCount(p.PublicRepos),
		Followers:       cloneCount(p.Followers),
		Following:       cloneCount(p.Following),
		Location:        cloneString(p.Location),
		HTMLURL:         cloneString(p.HTMLURL),
		TwitterUsername: cloneString(p.TwitterUsername),
		Company:         cloneString(p.Company),
		CreatedAt:       cloneString(p.CreatedAt),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneCount(c *Count) *Count {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
