package team

import (
	"context"
	"fmt"

	"github.com/hopeharbor/backend/internal/models"
	"github.com/hopeharbor/backend/pkg/docstore"
)

// Repository reads and mutates the team collection.
type Repository struct {
	store docstore.Store
}

// NewRepository creates a team repository.
func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store}
}

// ListAll returns every team member, sorted by category then name for display.
func (r *Repository) ListAll(ctx context.Context) ([]models.TeamMember, error) {
	docs, err := r.store.List(ctx, docstore.CollectionTeam)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	members := make([]models.TeamMember, 0, len(docs))
	for _, d := range docs {
		members = append(members, models.TeamMemberFromDocument(d.ID, d.Data))
	}
	models.SortTeamMembers(members)
	return members, nil
}

// Create inserts a new team member document and returns its id.
func (r *Repository) Create(ctx context.Context, data map[string]interface{}) (string, error) {
	id, err := r.store.Create(ctx, docstore.CollectionTeam, data)
	if err != nil {
		return "", fmt.Errorf("create team member: %w", err)
	}
	return id, nil
}

// Update patches an existing team member document.
func (r *Repository) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	if err := r.store.Update(ctx, docstore.CollectionTeam, id, patch); err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// Delete removes a team member by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, docstore.CollectionTeam, id); err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}
