package models

import (
	"strings"
	"time"
)

// Position is one open role shown on the careers page.
type Position struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type,omitempty"`
	Location    string     `json:"location,omitempty"`
	Commitment  string     `json:"commitment,omitempty"`
	Description string     `json:"description,omitempty"`
	Skills      []string   `json:"skills"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// PositionFromDocument decodes a raw document with defaults.
func PositionFromDocument(id string, data map[string]interface{}) Position {
	return Position{
		ID:          id,
		Title:       DocString(data, "title"),
		Type:        DocString(data, "type"),
		Location:    DocString(data, "location"),
		Commitment:  DocString(data, "commitment"),
		Description: DocString(data, "description"),
		Skills:      docStringList(data, "skills"),
		CreatedAt:   ParseTimestamp(data["createdAt"]),
	}
}

// ParseSkills splits a comma-separated skills input into an ordered list,
// trimming each segment and dropping empties.
func ParseSkills(input string) []string {
	skills := []string{}
	for _, s := range strings.Split(input, ",") {
		if t := strings.TrimSpace(s); t != "" {
			skills = append(skills, t)
		}
	}
	return skills
}

func docStringList(data map[string]interface{}, key string) []string {
	list := []string{}
	raw, ok := data[key].([]interface{})
	if !ok {
		return list
	}
	for _, v := range raw {
		if s, ok := v.(string); ok {
			list = append(list, s)
		}
	}
	return list
}
