package positions

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hopeharbor/backend/internal/models"
	"github.com/hopeharbor/backend/pkg/docstore"
)

// Repository reads and mutates the positions collection.
type Repository struct {
	store docstore.Store
}

// NewRepository creates a positions repository.
func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store}
}

// ListAll returns every open position, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Position, error) {
	docs, err := r.store.List(ctx, docstore.CollectionPositions)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	list := make([]models.Position, 0, len(docs))
	for _, d := range docs {
		list = append(list, models.PositionFromDocument(d.ID, d.Data))
	}
	sort.SliceStable(list, func(i, j int) bool {
		var ti, tj time.Time
		if list[i].CreatedAt != nil {
			ti = *list[i].CreatedAt
		}
		if list[j].CreatedAt != nil {
			tj = *list[j].CreatedAt
		}
		return ti.After(tj)
	})
	return list, nil
}

// GetByID returns a position, or nil when the id is unknown.
func (r *Repository) GetByID(ctx context.Context, id string) (*models.Position, error) {
	list, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// Create inserts a new position document and returns its id.
func (r *Repository) Create(ctx context.Context, data map[string]interface{}) (string, error) {
	id, err := r.store.Create(ctx, docstore.CollectionPositions, data)
	if err != nil {
		return "", fmt.Errorf("create position: %w", err)
	}
	return id, nil
}

// Update patches an existing position document.
func (r *Repository) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	if err := r.store.Update(ctx, docstore.CollectionPositions, id, patch); err != nil {
		return fmt.Errorf("update position: %w", err)
	}
	return nil
}

// Delete removes a position by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, docstore.CollectionPositions, id); err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	return nil
}
