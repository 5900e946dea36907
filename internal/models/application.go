package models

import (
	"strings"
	"time"
)

// ApplicationStatus is the review state of a submission.
type ApplicationStatus string

const (
	StatusNew      ApplicationStatus = "new"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusArchived ApplicationStatus = "archived"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s string) bool {
	switch ApplicationStatus(strings.ToLower(s)) {
	case StatusNew, StatusReviewed, StatusArchived:
		return true
	}
	return false
}

// EffectiveStatus normalizes a stored status value: lowercased, with missing
// or empty treated as "new". This is the status used by every filter, count
// and display decision.
func EffectiveStatus(raw string) ApplicationStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StatusNew
	}
	return ApplicationStatus(s)
}

// Application is one candidate/volunteer submission.
type Application struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone,omitempty"`
	PositionID     string            `json:"position_id,omitempty"`
	PositionTitle  string            `json:"position_title,omitempty"`
	Message        string            `json:"message,omitempty"`
	FileURL        string            `json:"file_url,omitempty"`
	FileName       string            `json:"file_name,omitempty"`
	FilePath       string            `json:"file_path,omitempty"`
	FileType       string            `json:"file_type,omitempty"`
	Status         ApplicationStatus `json:"status"`
	Source         string            `json:"source,omitempty"`
	SubmissionType string            `json:"submission_type,omitempty"`
	CreatedAt      *time.Time        `json:"created_at,omitempty"`
	UpdatedAt      *time.Time        `json:"updated_at,omitempty"`
}

// ApplicationFromDocument decodes a raw document, substituting defaults for
// missing fields and normalizing timestamps.
func ApplicationFromDocument(id string, data map[string]interface{}) Application {
	return Application{
		ID:             id,
		Name:           DocString(data, "name"),
		Email:          DocString(data, "email"),
		Phone:          DocString(data, "phone"),
		PositionID:     DocString(data, "positionId"),
		PositionTitle:  DocString(data, "positionTitle"),
		Message:        DocString(data, "message"),
		FileURL:        DocString(data, "fileUrl"),
		FileName:       DocString(data, "fileName"),
		FilePath:       DocString(data, "filePath"),
		FileType:       DocString(data, "fileType"),
		Status:         EffectiveStatus(DocString(data, "status")),
		Source:         DocString(data, "source"),
		SubmissionType: DocString(data, "submissionType"),
		CreatedAt:      ParseTimestamp(data["createdAt"]),
		UpdatedAt:      ParseTimestamp(data["updatedAt"]),
	}
}

// PositionFilterKey derives the filter key an application belongs to:
// "id:{positionId}" when linked to a position, "title:{positionTitle}" when
// only the denormalized title survives, "general" otherwise.
func (a Application) PositionFilterKey() string {
	if a.PositionID != "" {
		return "id:" + a.PositionID
	}
	if a.PositionTitle != "" {
		return "title:" + a.PositionTitle
	}
	return "general"
}
