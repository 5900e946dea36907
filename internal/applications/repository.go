package applications

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hopeharbor/backend/internal/models"
	"github.com/hopeharbor/backend/pkg/docstore"
)

// Repository reads and mutates the applications collection.
type Repository struct {
	store docstore.Store
}

// NewRepository creates an applications repository.
func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store}
}

// ListAll returns every application, newest first. Records whose createdAt
// is missing or unparsable sort as if their timestamp were zero, i.e. to
// the end of the list.
func (r *Repository) ListAll(ctx context.Context) ([]models.Application, error) {
	docs, err := r.store.List(ctx, docstore.CollectionApplications)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	apps := make([]models.Application, 0, len(docs))
	for _, d := range docs {
		apps = append(apps, models.ApplicationFromDocument(d.ID, d.Data))
	}
	sort.SliceStable(apps, func(i, j int) bool {
		var ti, tj time.Time
		if apps[i].CreatedAt != nil {
			ti = *apps[i].CreatedAt
		}
		if apps[j].CreatedAt != nil {
			tj = *apps[j].CreatedAt
		}
		return ti.After(tj)
	})
	return apps, nil
}

// Create inserts a new application document and returns its id.
func (r *Repository) Create(ctx context.Context, data map[string]interface{}) (string, error) {
	id, err := r.store.Create(ctx, docstore.CollectionApplications, data)
	if err != nil {
		return "", fmt.Errorf("create application: %w", err)
	}
	return id, nil
}

// UpdateStatus patches an application's status and updatedAt.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, now time.Time) error {
	patch := map[string]interface{}{
		"status":    string(status),
		"updatedAt": now.UTC().Format(time.RFC3339),
	}
	if err := r.store.Update(ctx, docstore.CollectionApplications, id, patch); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// Delete removes an application by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, docstore.CollectionApplications, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
