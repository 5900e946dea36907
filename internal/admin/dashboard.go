// Package admin maintains the dashboard's local cache of the three content
// collections and exposes derived views, summary statistics and mutation
// operations with optimistic local updates.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hopeharbor/backend/internal/applications"
	"github.com/hopeharbor/backend/internal/models"
	"github.com/hopeharbor/backend/internal/positions"
	"github.com/hopeharbor/backend/internal/team"
	"github.com/hopeharbor/backend/pkg/queue"
	"github.com/hopeharbor/backend/pkg/storage"
)

// Filter sentinels.
const (
	FilterAll       = "all"
	PositionGeneral = "general"
)

// NoSubmissionsYet is the stats sentinel when no application exists.
const NoSubmissionsYet = "no submissions yet"

// ErrConfirmationRequired is returned by delete operations when the caller
// has not confirmed; no remote call has been made.
var ErrConfirmationRequired = errors.New("confirmation required")

// ErrUnknownRecord is returned when an id is not in the local cache.
var ErrUnknownRecord = errors.New("unknown record")

// ObjectStorage is the storage collaborator the dashboard uses for team photos.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, contentLength int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// CleanupQueue schedules background retries for failed best-effort deletes.
type CleanupQueue interface {
	EnqueueAssetCleanup(ctx context.Context, payload queue.AssetCleanupPayload) error
}

// Filters is the dashboard's application filter state.
type Filters struct {
	Status   string `json:"status"`   // all|new|reviewed|archived
	Position string `json:"position"` // all|general|id:{positionId}|title:{positionTitle}
	Search   string `json:"search"`   // free text
}

// FilterOption is one entry in the position filter dropdown.
type FilterOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Stats are the dashboard summary numbers.
type Stats struct {
	TotalApplications int    `json:"total_applications"`
	PendingReview     int    `json:"pending_review"`
	OpenPositions     int    `json:"open_positions"`
	TeamMemberCount   int    `json:"team_member_count"`
	LastSubmission    string `json:"last_submission"`
}

// PositionForm is the position edit form.
type PositionForm struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Commitment  string `json:"commitment"`
	Description string `json:"description"`
	Skills      string `json:"skills"` // comma-separated input
}

// TeamForm is the team member edit form.
type TeamForm struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
}

// PhotoUpload is an incoming team photo file.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Dashboard owns the only in-memory cache of the three collections. The
// store remains the source of truth; caches re-sync on demand or after a
// mutation. Mutation failures leave the cache in its pre-mutation state.
type Dashboard struct {
	appRepo  *applications.Repository
	posRepo  *positions.Repository
	teamRepo *team.Repository
	assets   ObjectStorage // may be nil when storage is not configured
	cleanup  CleanupQueue  // may be nil
	logger   *zap.Logger
	now      func() time.Time

	mu           sync.Mutex
	loaded       bool
	applications []models.Application
	positions    []models.Position
	teamMembers  []models.TeamMember
	filters      Filters
	lastError    string

	positionForm      PositionForm
	editingPositionID string
	teamForm          TeamForm
	editingTeamID     string
}

// NewDashboard creates the admin dashboard viewmodel.
func NewDashboard(appRepo *applications.Repository, posRepo *positions.Repository, teamRepo *team.Repository, assets ObjectStorage, cleanup CleanupQueue, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		appRepo:  appRepo,
		posRepo:  posRepo,
		teamRepo: teamRepo,
		assets:   assets,
		cleanup:  cleanup,
		logger:   logger,
		now:      time.Now,
		filters:  Filters{Status: FilterAll, Position: FilterAll},
	}
}

// LoadApplications fetches all applications. On failure the cached list is
// left untouched and the error is also recorded as display state.
func (d *Dashboard) LoadApplications(ctx context.Context) error {
	apps, err := d.appRepo.ListAll(ctx)
	if err != nil {
		d.setError("failed to load applications")
		return err
	}
	d.mu.Lock()
	d.applications = apps
	d.lastError = ""
	d.mu.Unlock()
	return nil
}

// LoadPositions fetches all positions.
func (d *Dashboard) LoadPositions(ctx context.Context) error {
	list, err := d.posRepo.ListAll(ctx)
	if err != nil {
		d.setError("failed to load positions")
		return err
	}
	d.mu.Lock()
	d.positions = list
	d.mu.Unlock()
	return nil
}

// LoadTeam fetches all team members.
func (d *Dashboard) LoadTeam(ctx context.Context) error {
	members, err := d.teamRepo.ListAll(ctx)
	if err != nil {
		d.setError("failed to load team")
		return err
	}
	d.mu.Lock()
	d.teamMembers = members
	d.mu.Unlock()
	return nil
}

// Refresh reloads all three collections. The first error wins; collections
// that loaded successfully keep their fresh data.
func (d *Dashboard) Refresh(ctx context.Context) error {
	var first error
	for _, load := range []func(context.Context) error{d.LoadApplications, d.LoadPositions, d.LoadTeam} {
		if err := load(ctx); err != nil && first == nil {
			first = err
		}
	}
	d.mu.Lock()
	d.loaded = true
	d.mu.Unlock()
	return first
}

// EnsureLoaded performs the initial fetch once; later calls are no-ops and
// the caches only change through Refresh or mutations.
func (d *Dashboard) EnsureLoaded(ctx context.Context) error {
	d.mu.Lock()
	loaded := d.loaded
	d.mu.Unlock()
	if loaded {
		return nil
	}
	return d.Refresh(ctx)
}

// SetFilters replaces the filter state, substituting "all" for empty values.
func (d *Dashboard) SetFilters(f Filters) {
	if f.Status == "" {
		f.Status = FilterAll
	}
	if f.Position == "" {
		f.Position = FilterAll
	}
	f.Status = strings.ToLower(f.Status)
	d.mu.Lock()
	d.filters = f
	d.mu.Unlock()
}

// Filters returns the current filter state.
func (d *Dashboard) Filters() Filters {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filters
}

// LastError returns the display-state error from the most recent failed
// fetch, empty when the last fetch succeeded.
func (d *Dashboard) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastError
}

// Applications returns the cached application list.
func (d *Dashboard) Applications() []models.Application {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.Application(nil), d.applications...)
}

// Positions returns the cached position list.
func (d *Dashboard) Positions() []models.Position {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.Position(nil), d.positions...)
}

// TeamMembers returns the cached team list.
func (d *Dashboard) TeamMembers() []models.TeamMember {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.TeamMember(nil), d.teamMembers...)
}

// FilteredApplications applies the three AND-combined predicates: status,
// position key, and free-text search across name, email, phone, position
// title, message and file type.
func (d *Dashboard) FilteredApplications() []models.Application {
	d.mu.Lock()
	defer d.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(d.filters.Search))
	var out []models.Application
	for _, app := range d.applications {
		if d.filters.Status != FilterAll && string(app.Status) != d.filters.Status {
			continue
		}
		if d.filters.Position != FilterAll && app.PositionFilterKey() != d.filters.Position {
			continue
		}
		if term != "" && !matchesSearch(app, term) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func matchesSearch(app models.Application, term string) bool {
	for _, field := range []string{app.Name, app.Email, app.Phone, app.PositionTitle, app.Message, app.FileType} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// PositionFilterOptions builds the distinct filter dropdown: the union of
// every position's own id key and every application's derived key,
// deduplicated by key with the first-seen label winning.
func (d *Dashboard) PositionFilterOptions() []FilterOption {
	d.mu.Lock()
	defer d.mu.Unlock()

	options := []FilterOption{{Key: FilterAll, Label: "All positions"}}
	seen := map[string]bool{FilterAll: true}

	add := func(key, label string) {
		if seen[key] {
			return
		}
		seen[key] = true
		options = append(options, FilterOption{Key: key, Label: label})
	}

	for _, p := range d.positions {
		add("id:"+p.ID, p.Title)
	}
	for _, a := range d.applications {
		key := a.PositionFilterKey()
		label := a.PositionTitle
		if key == PositionGeneral {
			label = "General"
		}
		if label == "" {
			label = key
		}
		add(key, label)
	}
	return options
}

// Stats computes the dashboard summary numbers from the caches.
func (d *Dashboard) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := 0
	for _, a := range d.applications {
		if a.Status == models.StatusNew {
			pending++
		}
	}
	last := NoSubmissionsYet
	if len(d.applications) > 0 {
		last = FormatRelativeTime(d.applications[0].CreatedAt, d.now())
	}
	return Stats{
		TotalApplications: len(d.applications),
		PendingReview:     pending,
		OpenPositions:     len(d.positions),
		TeamMemberCount:   len(d.teamMembers),
		LastSubmission:    last,
	}
}

// UpdateApplicationStatus issues a remote status update and, on success,
// patches the cached record in place without a full reload. On failure the
// cache is untouched; remote and local state may diverge until the next
// manual refresh.
func (d *Dashboard) UpdateApplicationStatus(ctx context.Context, id, nextStatus string) error {
	if !models.ValidStatus(nextStatus) {
		return fmt.Errorf("invalid status %q", nextStatus)
	}
	status := models.EffectiveStatus(nextStatus)
	now := d.now()
	if err := d.appRepo.UpdateStatus(ctx, id, status, now); err != nil {
		return err
	}
	d.mu.Lock()
	for i := range d.applications {
		if d.applications[i].ID == id {
			d.applications[i].Status = status
			t := now
			d.applications[i].UpdatedAt = &t
			break
		}
	}
	d.mu.Unlock()
	return nil
}

// DeleteApplication removes an application. Without confirmation no remote
// call is made. On success the record is dropped from the local cache.
func (d *Dashboard) DeleteApplication(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := d.appRepo.Delete(ctx, id); err != nil {
		return err
	}
	d.mu.Lock()
	for i := range d.applications {
		if d.applications[i].ID == id {
			d.applications = append(d.applications[:i], d.applications[i+1:]...)
			break
		}
	}
	d.mu.Unlock()
	return nil
}

// SavePosition creates or updates a position. Skills input is split on
// commas, trimmed, with empty segments dropped. On success the position
// list is reloaded from the store (authoritative refetch, no optimistic
// patch) and the edit form resets; on failure the form is preserved.
func (d *Dashboard) SavePosition(ctx context.Context, form PositionForm, editingID string) error {
	d.mu.Lock()
	d.positionForm = form
	d.editingPositionID = editingID
	d.mu.Unlock()

	data := map[string]interface{}{
		"title":       form.Title,
		"type":        form.Type,
		"location":    form.Location,
		"commitment":  form.Commitment,
		"description": form.Description,
		"skills":      models.ParseSkills(form.Skills),
		"createdAt":   d.now().UTC().Format(time.RFC3339),
	}

	var err error
	if editingID != "" {
		err = d.posRepo.Update(ctx, editingID, data)
	} else {
		_, err = d.posRepo.Create(ctx, data)
	}
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.positionForm = PositionForm{}
	d.editingPositionID = ""
	d.mu.Unlock()
	return d.LoadPositions(ctx)
}

// DeletePosition removes a position after confirmation, then reloads the
// full list from the store.
func (d *Dashboard) DeletePosition(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := d.posRepo.Delete(ctx, id); err != nil {
		return err
	}
	return d.LoadPositions(ctx)
}

// SaveTeamMember creates or updates a team member, handling the optional
// photo replacement: the prior asset is deleted best-effort (never blocks
// the save), the new file is uploaded under a timestamped key, and its
// public URL and path are stored. Name and title are normalized to title
// case. On success the form resets and the team list is reloaded.
func (d *Dashboard) SaveTeamMember(ctx context.Context, form TeamForm, editingID string, photo *PhotoUpload) error {
	d.mu.Lock()
	d.teamForm = form
	d.editingTeamID = editingID
	var existing *models.TeamMember
	for i := range d.teamMembers {
		if d.teamMembers[i].ID == editingID {
			m := d.teamMembers[i]
			existing = &m
			break
		}
	}
	d.mu.Unlock()

	photoURL, photoPath := "", ""
	if existing != nil {
		photoURL, photoPath = existing.PhotoURL, existing.PhotoPath
	}

	if photo != nil {
		if d.assets == nil {
			return errors.New("object storage is not configured")
		}
		if existing != nil && existing.PhotoPath != "" {
			d.bestEffortCleanup(ctx, existing.PhotoPath, "replaced team photo")
		}
		key := storage.TeamPhotoKey(photo.Filename, d.now())
		url, err := d.assets.Upload(ctx, key, photo.ContentType, photo.Body, photo.Size)
		if err != nil {
			return fmt.Errorf("upload photo: %w", err)
		}
		photoURL, photoPath = url, key
	}

	now := d.now().UTC().Format(time.RFC3339)
	data := map[string]interface{}{
		"name":      models.TitleCaseName(form.Name),
		"title":     models.TitleCaseName(form.Title),
		"bio":       form.Bio,
		"linkedin":  form.LinkedIn,
		"email":     form.Email,
		"category":  form.Category,
		"emoji":     form.Emoji,
		"photoUrl":  photoURL,
		"photoPath": photoPath,
		"updatedAt": now,
	}

	var err error
	if editingID != "" {
		err = d.teamRepo.Update(ctx, editingID, data)
	} else {
		data["createdAt"] = now
		_, err = d.teamRepo.Create(ctx, data)
	}
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.teamForm = TeamForm{}
	d.editingTeamID = ""
	d.mu.Unlock()
	return d.LoadTeam(ctx)
}

// DeleteTeamMember removes a member after confirmation, best-effort deletes
// the associated photo, drops the record from the cache, and resets the
// edit form when the deleted member was the one being edited.
func (d *Dashboard) DeleteTeamMember(ctx context.Context, id string, confirmed bool) error {
	d.mu.Lock()
	var member *models.TeamMember
	for i := range d.teamMembers {
		if d.teamMembers[i].ID == id {
			m := d.teamMembers[i]
			member = &m
			break
		}
	}
	d.mu.Unlock()
	if member == nil {
		return ErrUnknownRecord
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := d.teamRepo.Delete(ctx, id); err != nil {
		return err
	}
	if member.PhotoPath != "" {
		d.bestEffortCleanup(ctx, member.PhotoPath, "deleted team member photo")
	}

	d.mu.Lock()
	for i := range d.teamMembers {
		if d.teamMembers[i].ID == id {
			d.teamMembers = append(d.teamMembers[:i], d.teamMembers[i+1:]...)
			break
		}
	}
	if d.editingTeamID == id {
		d.teamForm = TeamForm{}
		d.editingTeamID = ""
	}
	d.mu.Unlock()
	return nil
}

// TeamMemberName returns the cached member's display name, for confirmation
// prompts.
func (d *Dashboard) TeamMemberName(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, m := range d.teamMembers {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}

// PositionFormState returns the current edit form and the id being edited.
func (d *Dashboard) PositionFormState() (PositionForm, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.positionForm, d.editingPositionID
}

// TeamFormState returns the current edit form and the id being edited.
func (d *Dashboard) TeamFormState() (TeamForm, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.teamForm, d.editingTeamID
}

// bestEffortCleanup deletes an object, swallowing failures: they are logged
// and handed to the background cleanup queue, never propagated. A failure
// here must not block or fail the primary operation it is attached to.
func (d *Dashboard) bestEffortCleanup(ctx context.Context, key, reason string) {
	if d.assets == nil || key == "" {
		return
	}
	err := d.assets.Delete(ctx, key)
	if err == nil {
		return
	}
	d.logger.Warn("best-effort asset delete failed", zap.Error(err), zap.String("key", key))
	if d.cleanup == nil {
		return
	}
	if err := d.cleanup.EnqueueAssetCleanup(ctx, queue.AssetCleanupPayload{Key: key, Reason: reason}); err != nil {
		d.logger.Warn("enqueue asset cleanup failed", zap.Error(err), zap.String("key", key))
	}
}

func (d *Dashboard) setError(msg string) {
	d.mu.Lock()
	d.lastError = msg
	d.mu.Unlock()
}
