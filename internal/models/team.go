package models

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Team member categories.
const (
	CategoryBoard      = "board"
	CategoryLeadership = "leadership"
)

// TeamMember is one person on the about page.
type TeamMember struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Bio       string     `json:"bio,omitempty"`
	LinkedIn  string     `json:"linkedin,omitempty"`
	Email     string     `json:"email,omitempty"`
	Category  string     `json:"category,omitempty"`
	Emoji     string     `json:"emoji,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	PhotoPath string     `json:"photo_path,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TeamMemberFromDocument decodes a raw document with defaults.
func TeamMemberFromDocument(id string, data map[string]interface{}) TeamMember {
	return TeamMember{
		ID:        id,
		Name:      DocString(data, "name"),
		Title:     DocString(data, "title"),
		Bio:       DocString(data, "bio"),
		LinkedIn:  DocString(data, "linkedin"),
		Email:     DocString(data, "email"),
		Category:  DocString(data, "category"),
		Emoji:     DocString(data, "emoji"),
		PhotoURL:  DocString(data, "photoUrl"),
		PhotoPath: DocString(data, "photoPath"),
		CreatedAt: ParseTimestamp(data["createdAt"]),
		UpdatedAt: ParseTimestamp(data["updatedAt"]),
	}
}

// TitleCaseName normalizes a person's name or title: trims, collapses
// whitespace, and capitalizes each word (first rune upper, rest lower).
// Applying it twice yields the same result as applying it once.
func TitleCaseName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// SortTeamMembers orders members for display: by category then name,
// lexicographic ascending, missing values sorting as empty strings.
func SortTeamMembers(members []TeamMember) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Category != members[j].Category {
			return members[i].Category < members[j].Category
		}
		return members[i].Name < members[j].Name
	})
}
