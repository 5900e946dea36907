package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/hopeharbor/backend/internal/applications"
	"github.com/hopeharbor/backend/internal/models"
	"github.com/hopeharbor/backend/internal/positions"
	"github.com/hopeharbor/backend/internal/team"
	"github.com/hopeharbor/backend/pkg/docstore"
	"github.com/hopeharbor/backend/pkg/queue"
)

// memStore is an in-memory docstore.Store. Data maps round-trip through JSON
// on write, matching how the real backend normalizes values.
type memStore struct {
	docs      map[string][]docstore.Document
	nextID    int
	listErr   map[string]error
	createErr error
	updateErr error
	deleteErr error

	updateCalls int
	deleteCalls int
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]docstore.Document), listErr: make(map[string]error)}
}

func normalize(data map[string]interface{}) map[string]interface{} {
	raw, _ := json.Marshal(data)
	var out map[string]interface{}
	_ = json.Unmarshal(raw, &out)
	return out
}

func (m *memStore) seed(collection, id string, data map[string]interface{}) {
	m.docs[collection] = append(m.docs[collection], docstore.Document{ID: id, Data: normalize(data)})
}

func (m *memStore) List(_ context.Context, collection string) ([]docstore.Document, error) {
	if err := m.listErr[collection]; err != nil {
		return nil, err
	}
	return append([]docstore.Document(nil), m.docs[collection]...), nil
}

func (m *memStore) Create(_ context.Context, collection string, data map[string]interface{}) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.nextID++
	id := fmt.Sprintf("doc-%d", m.nextID)
	m.docs[collection] = append(m.docs[collection], docstore.Document{ID: id, Data: normalize(data)})
	return id, nil
}

func (m *memStore) Update(_ context.Context, collection, id string, patch map[string]interface{}) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	for i, d := range m.docs[collection] {
		if d.ID == id {
			for k, v := range normalize(patch) {
				m.docs[collection][i].Data[k] = v
			}
			return nil
		}
	}
	return docstore.ErrNotFound
}

func (m *memStore) Delete(_ context.Context, collection, id string) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, d := range m.docs[collection] {
		if d.ID == id {
			m.docs[collection] = append(m.docs[collection][:i], m.docs[collection][i+1:]...)
			return nil
		}
	}
	return docstore.ErrNotFound
}

type stubStorage struct {
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
}

func (s *stubStorage) Upload(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads = append(s.uploads, key)
	return "https://assets.example.org/" + key, nil
}

func (s *stubStorage) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, key)
	return nil
}

type stubQueue struct {
	payloads []queue.AssetCleanupPayload
}

func (q *stubQueue) EnqueueAssetCleanup(_ context.Context, p queue.AssetCleanupPayload) error {
	q.payloads = append(q.payloads, p)
	return nil
}

func newTestDashboard(store *memStore, assets ObjectStorage, cleanup CleanupQueue) *Dashboard {
	d := NewDashboard(
		applications.NewRepository(store),
		positions.NewRepository(store),
		team.NewRepository(store),
		assets, cleanup, nil,
	)
	d.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return d
}

func seedApplications(store *memStore) {
	store.seed(docstore.CollectionApplications, "app-1", map[string]interface{}{
		"name": "Ada Lovelace", "email": "ada@example.org",
		"positionId": "pos-1", "positionTitle": "Engineer",
		"status": "new", "createdAt": "2024-06-01T11:30:00Z",
	})
	store.seed(docstore.CollectionApplications, "app-2", map[string]interface{}{
		"name": "Grace Hopper", "email": "grace@example.org",
		"positionTitle": "Engineer",
		"status":        "reviewed", "createdAt": "2024-05-01T10:00:00Z",
	})
	store.seed(docstore.CollectionApplications, "app-3", map[string]interface{}{
		"name": "Bob General", "email": "bob@example.org",
		"createdAt": "2024-04-01T10:00:00Z",
	})
}

func TestEnsureLoadedFetchesOnce(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)

	if err := d.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	if got := len(d.Applications()); got != 3 {
		t.Fatalf("cached %d applications, want 3", got)
	}

	// Later store changes stay invisible until an explicit refresh.
	store.seed(docstore.CollectionApplications, "app-4", map[string]interface{}{"name": "Late"})
	if err := d.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded again: %v", err)
	}
	if got := len(d.Applications()); got != 3 {
		t.Errorf("EnsureLoaded refetched: %d applications", got)
	}
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := len(d.Applications()); got != 4 {
		t.Errorf("Refresh did not resync: %d applications", got)
	}
}

func TestApplicationsSortedNewestFirst(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	store.seed(docstore.CollectionApplications, "app-undated", map[string]interface{}{"name": "No Date"})
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	apps := d.Applications()
	if apps[0].ID != "app-1" {
		t.Errorf("newest first: got %s", apps[0].ID)
	}
	if apps[len(apps)-1].ID != "app-undated" {
		t.Errorf("undated record should sort last, got %s", apps[len(apps)-1].ID)
	}
}

func TestMissingStatusCountsAsNew(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	d.SetFilters(Filters{Status: "new"})
	got := d.FilteredApplications()
	if len(got) != 2 {
		t.Fatalf("new filter matched %d, want 2 (explicit new + missing status)", len(got))
	}
	for _, a := range got {
		if a.Status != models.StatusNew {
			t.Errorf("application %s has status %q", a.ID, a.Status)
		}
	}
}

func TestFiltersAreConjunctive(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	cases := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{"status only", Filters{Status: "reviewed"}, []string{"app-2"}},
		{"position by id", Filters{Position: "id:pos-1"}, []string{"app-1"}},
		{"position by title", Filters{Position: "title:Engineer"}, []string{"app-2"}},
		{"general bucket", Filters{Position: PositionGeneral}, []string{"app-3"}},
		{"search", Filters{Search: "hopper"}, []string{"app-2"}},
		{"search case-insensitive", Filters{Search: "ADA"}, []string{"app-1"}},
		{"all three", Filters{Status: "new", Position: "id:pos-1", Search: "ada"}, []string{"app-1"}},
		{"conjunction excludes", Filters{Status: "reviewed", Search: "ada"}, nil},
	}
	for _, c := range cases {
		d.SetFilters(c.filters)
		got := d.FilteredApplications()
		if len(got) != len(c.wantIDs) {
			t.Errorf("%s: matched %d, want %d", c.name, len(got), len(c.wantIDs))
			continue
		}
		for i, a := range got {
			if a.ID != c.wantIDs[i] {
				t.Errorf("%s: got %s at %d, want %s", c.name, a.ID, i, c.wantIDs[i])
			}
		}
	}
}

func TestPositionFilterOptionsDedup(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	store.seed(docstore.CollectionPositions, "pos-1", map[string]interface{}{"title": "Engineer (open)"})
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	options := d.PositionFilterOptions()
	byKey := make(map[string]string)
	for _, o := range options {
		if _, dup := byKey[o.Key]; dup {
			t.Errorf("duplicate key %q", o.Key)
		}
		byKey[o.Key] = o.Label
	}
	if options[0].Key != FilterAll {
		t.Errorf("first option = %q, want all", options[0].Key)
	}
	// The position's own label wins over the application-derived one.
	if byKey["id:pos-1"] != "Engineer (open)" {
		t.Errorf("id:pos-1 label = %q", byKey["id:pos-1"])
	}
	if byKey["title:Engineer"] != "Engineer" {
		t.Errorf("title key label = %q", byKey["title:Engineer"])
	}
	if byKey[PositionGeneral] != "General" {
		t.Errorf("general label = %q", byKey[PositionGeneral])
	}
}

func TestStats(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	store.seed(docstore.CollectionPositions, "pos-1", map[string]interface{}{"title": "Engineer"})
	store.seed(docstore.CollectionTeam, "tm-1", map[string]interface{}{"name": "Ana"})
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	stats := d.Stats()
	if stats.TotalApplications != 3 || stats.PendingReview != 2 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.OpenPositions != 1 || stats.TeamMemberCount != 1 {
		t.Errorf("counts = %+v", stats)
	}
	// Newest submission was at 11:30, now is 12:00.
	if stats.LastSubmission != "30m ago" {
		t.Errorf("last submission = %q", stats.LastSubmission)
	}
}

func TestStatsEmptySentinel(t *testing.T) {
	d := newTestDashboard(newMemStore(), nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := d.Stats().LastSubmission; got != NoSubmissionsYet {
		t.Errorf("sentinel = %q", got)
	}
}

func TestUpdateApplicationStatusOptimistic(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if err := d.UpdateApplicationStatus(context.Background(), "app-1", "archived"); err != nil {
		t.Fatalf("UpdateApplicationStatus: %v", err)
	}
	for _, a := range d.Applications() {
		if a.ID == "app-1" {
			if a.Status != models.StatusArchived {
				t.Errorf("cache status = %q", a.Status)
			}
			if a.UpdatedAt == nil {
				t.Error("cache UpdatedAt not patched")
			}
		}
	}
	if store.updateCalls != 1 {
		t.Errorf("store updates = %d, want 1", store.updateCalls)
	}
}

func TestUpdateApplicationStatusRejectsInvalid(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := d.UpdateApplicationStatus(context.Background(), "app-1", "bogus"); err == nil {
		t.Fatal("invalid status accepted")
	}
	if store.updateCalls != 0 {
		t.Errorf("invalid status reached the store %d times", store.updateCalls)
	}
}

func TestUpdateApplicationStatusFailureLeavesCache(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	store.updateErr = errors.New("store down")
	if err := d.UpdateApplicationStatus(context.Background(), "app-1", "archived"); err == nil {
		t.Fatal("expected error")
	}
	for _, a := range d.Applications() {
		if a.ID == "app-1" && a.Status != models.StatusNew {
			t.Errorf("cache mutated on failure: %q", a.Status)
		}
	}
}

func TestDeleteApplicationRequiresConfirmation(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if err := d.DeleteApplication(context.Background(), "app-1", false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("err = %v, want ErrConfirmationRequired", err)
	}
	if store.deleteCalls != 0 {
		t.Errorf("unconfirmed delete reached the store")
	}
	if len(d.Applications()) != 3 {
		t.Errorf("cache changed without confirmation")
	}

	if err := d.DeleteApplication(context.Background(), "app-1", true); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	for _, a := range d.Applications() {
		if a.ID == "app-1" {
			t.Error("deleted application still cached")
		}
	}
}

func TestSavePositionParsesSkillsAndResetsForm(t *testing.T) {
	store := newMemStore()
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	form := PositionForm{Title: "Outreach Lead", Skills: " fundraising , events ,, spanish "}
	if err := d.SavePosition(context.Background(), form, ""); err != nil {
		t.Fatalf("SavePosition: %v", err)
	}

	list := d.Positions()
	if len(list) != 1 {
		t.Fatalf("positions cached = %d, want 1 (authoritative refetch)", len(list))
	}
	wantSkills := []string{"fundraising", "events", "spanish"}
	if len(list[0].Skills) != len(wantSkills) {
		t.Fatalf("skills = %v", list[0].Skills)
	}
	for i := range wantSkills {
		if list[0].Skills[i] != wantSkills[i] {
			t.Errorf("skills[%d] = %q, want %q", i, list[0].Skills[i], wantSkills[i])
		}
	}

	gotForm, editingID := d.PositionFormState()
	if gotForm != (PositionForm{}) || editingID != "" {
		t.Errorf("form not reset after success: %+v %q", gotForm, editingID)
	}
}

func TestSavePositionFailurePreservesForm(t *testing.T) {
	store := newMemStore()
	store.createErr = errors.New("store down")
	d := newTestDashboard(store, nil, nil)

	form := PositionForm{Title: "Outreach Lead", Skills: "a,b"}
	if err := d.SavePosition(context.Background(), form, ""); err == nil {
		t.Fatal("expected error")
	}
	gotForm, _ := d.PositionFormState()
	if gotForm != form {
		t.Errorf("form lost on failure: %+v", gotForm)
	}
}

func TestDeletePositionGate(t *testing.T) {
	store := newMemStore()
	store.seed(docstore.CollectionPositions, "pos-1", map[string]interface{}{"title": "Engineer"})
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := d.DeletePosition(context.Background(), "pos-1", false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("err = %v", err)
	}
	if err := d.DeletePosition(context.Background(), "pos-1", true); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if len(d.Positions()) != 0 {
		t.Error("position list not refetched after delete")
	}
}

func TestSaveTeamMemberNormalizesAndUploads(t *testing.T) {
	store := newMemStore()
	assets := &stubStorage{}
	d := newTestDashboard(store, assets, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	photo := &PhotoUpload{Filename: "head shot.jpg", ContentType: "image/jpeg", Size: 1024, Body: strings.NewReader("jpg")}
	form := TeamForm{Name: "jordan   lee", Title: "executive DIRECTOR", Category: models.CategoryLeadership}
	if err := d.SaveTeamMember(context.Background(), form, "", photo); err != nil {
		t.Fatalf("SaveTeamMember: %v", err)
	}

	members := d.TeamMembers()
	if len(members) != 1 {
		t.Fatalf("team cached = %d", len(members))
	}
	m := members[0]
	if m.Name != "Jordan Lee" || m.Title != "Executive Director" {
		t.Errorf("normalization: name=%q title=%q", m.Name, m.Title)
	}
	if len(assets.uploads) != 1 || !strings.HasPrefix(assets.uploads[0], "team/") {
		t.Errorf("uploads = %v", assets.uploads)
	}
	if m.PhotoPath != assets.uploads[0] {
		t.Errorf("photoPath = %q, want %q", m.PhotoPath, assets.uploads[0])
	}
	if m.PhotoURL == "" {
		t.Error("photoUrl not stored")
	}
}

func TestSaveTeamMemberReplacesOldPhoto(t *testing.T) {
	store := newMemStore()
	store.seed(docstore.CollectionTeam, "tm-1", map[string]interface{}{
		"name": "Ana Diaz", "photoUrl": "https://assets.example.org/team/old.jpg", "photoPath": "team/old.jpg",
	})
	assets := &stubStorage{}
	d := newTestDashboard(store, assets, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	photo := &PhotoUpload{Filename: "new.jpg", ContentType: "image/jpeg", Size: 10, Body: strings.NewReader("x")}
	if err := d.SaveTeamMember(context.Background(), TeamForm{Name: "Ana Diaz"}, "tm-1", photo); err != nil {
		t.Fatalf("SaveTeamMember: %v", err)
	}
	if len(assets.deletes) != 1 || assets.deletes[0] != "team/old.jpg" {
		t.Errorf("old photo not cleaned up: %v", assets.deletes)
	}
	if len(assets.uploads) != 1 {
		t.Errorf("uploads = %v", assets.uploads)
	}
}

func TestSaveTeamMemberKeepsPhotoWhenNoneUploaded(t *testing.T) {
	store := newMemStore()
	store.seed(docstore.CollectionTeam, "tm-1", map[string]interface{}{
		"name": "Ana Diaz", "photoUrl": "https://assets.example.org/team/old.jpg", "photoPath": "team/old.jpg",
	})
	d := newTestDashboard(store, &stubStorage{}, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := d.SaveTeamMember(context.Background(), TeamForm{Name: "ana diaz", Title: "chair"}, "tm-1", nil); err != nil {
		t.Fatalf("SaveTeamMember: %v", err)
	}
	m := d.TeamMembers()[0]
	if m.PhotoPath != "team/old.jpg" {
		t.Errorf("existing photo lost: %q", m.PhotoPath)
	}
}

func TestSaveTeamMemberCleanupFailureDoesNotFailSave(t *testing.T) {
	store := newMemStore()
	store.seed(docstore.CollectionTeam, "tm-1", map[string]interface{}{
		"name": "Ana Diaz", "photoPath": "team/old.jpg",
	})
	assets := &stubStorage{deleteErr: errors.New("s3 down")}
	cleanup := &stubQueue{}
	d := newTestDashboard(store, assets, cleanup)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	photo := &PhotoUpload{Filename: "new.jpg", ContentType: "image/jpeg", Size: 10, Body: strings.NewReader("x")}
	if err := d.SaveTeamMember(context.Background(), TeamForm{Name: "Ana Diaz"}, "tm-1", photo); err != nil {
		t.Fatalf("save failed because of best-effort cleanup: %v", err)
	}
	if len(cleanup.payloads) != 1 || cleanup.payloads[0].Key != "team/old.jpg" {
		t.Errorf("cleanup not queued: %v", cleanup.payloads)
	}
}

func TestSaveTeamMemberUploadFailurePreservesForm(t *testing.T) {
	store := newMemStore()
	assets := &stubStorage{uploadErr: errors.New("s3 down")}
	d := newTestDashboard(store, assets, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	form := TeamForm{Name: "jordan lee"}
	photo := &PhotoUpload{Filename: "p.jpg", ContentType: "image/jpeg", Size: 10, Body: strings.NewReader("x")}
	if err := d.SaveTeamMember(context.Background(), form, "", photo); err == nil {
		t.Fatal("expected upload error")
	}
	gotForm, _ := d.TeamFormState()
	if gotForm != form {
		t.Errorf("form lost on failure: %+v", gotForm)
	}
	if len(d.TeamMembers()) != 0 {
		t.Error("record created despite upload failure")
	}
}

func TestDeleteTeamMember(t *testing.T) {
	store := newMemStore()
	store.seed(docstore.CollectionTeam, "tm-1", map[string]interface{}{
		"name": "Ana Diaz", "photoPath": "team/ana.jpg",
	})
	assets := &stubStorage{}
	d := newTestDashboard(store, assets, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if err := d.DeleteTeamMember(context.Background(), "tm-9", true); !errors.Is(err, ErrUnknownRecord) {
		t.Fatalf("unknown id err = %v", err)
	}
	if err := d.DeleteTeamMember(context.Background(), "tm-1", false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("unconfirmed err = %v", err)
	}

	if err := d.DeleteTeamMember(context.Background(), "tm-1", true); err != nil {
		t.Fatalf("DeleteTeamMember: %v", err)
	}
	if len(d.TeamMembers()) != 0 {
		t.Error("member still cached")
	}
	if len(assets.deletes) != 1 || assets.deletes[0] != "team/ana.jpg" {
		t.Errorf("photo not cleaned up: %v", assets.deletes)
	}
}

func TestDeleteTeamMemberResetsFormWhenEditing(t *testing.T) {
	store := newMemStore()
	store.seed(docstore.CollectionTeam, "tm-1", map[string]interface{}{"name": "Ana Diaz"})
	store.updateErr = errors.New("store down")
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	// A failed save leaves tm-1 as the member being edited.
	if err := d.SaveTeamMember(context.Background(), TeamForm{Name: "Ana Diaz"}, "tm-1", nil); err == nil {
		t.Fatal("expected save failure")
	}
	if _, editing := d.TeamFormState(); editing != "tm-1" {
		t.Fatalf("editing = %q", editing)
	}

	store.updateErr = nil
	if err := d.DeleteTeamMember(context.Background(), "tm-1", true); err != nil {
		t.Fatalf("DeleteTeamMember: %v", err)
	}
	form, editing := d.TeamFormState()
	if form != (TeamForm{}) || editing != "" {
		t.Errorf("form not reset: %+v %q", form, editing)
	}
}

func TestLoadFailurePreservesCacheAndSetsError(t *testing.T) {
	store := newMemStore()
	seedApplications(store)
	d := newTestDashboard(store, nil, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	store.listErr[docstore.CollectionApplications] = errors.New("store down")
	if err := d.LoadApplications(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(d.Applications()) != 3 {
		t.Errorf("cache lost on failed load: %d", len(d.Applications()))
	}
	if d.LastError() == "" {
		t.Error("lastError not set")
	}

	store.listErr[docstore.CollectionApplications] = nil
	if err := d.LoadApplications(context.Background()); err != nil {
		t.Fatalf("LoadApplications: %v", err)
	}
	if d.LastError() != "" {
		t.Errorf("lastError not cleared: %q", d.LastError())
	}
}

func TestSetFiltersDefaults(t *testing.T) {
	d := newTestDashboard(newMemStore(), nil, nil)
	d.SetFilters(Filters{Status: "REVIEWED"})
	f := d.Filters()
	if f.Status != "reviewed" || f.Position != FilterAll {
		t.Errorf("filters = %+v", f)
	}
}
