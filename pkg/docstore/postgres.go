package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements Store on a single JSONB-backed documents table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed document store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// List returns every document in the collection.
func (s *Postgres) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, data FROM documents WHERE collection = $1`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		data := map[string]interface{}{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &data); err != nil {
				return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
			}
		}
		docs = append(docs, Document{ID: id.String(), Data: data})
	}
	return docs, rows.Err()
}

// Create inserts a document and returns the assigned id.
func (s *Postgres) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", collection, err)
	}
	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO documents (collection, data) VALUES ($1, $2) RETURNING id`,
		collection, raw).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", collection, err)
	}
	return id.String(), nil
}

// Update merges patch into the document's fields via JSONB concatenation.
func (s *Postgres) Update(ctx context.Context, collection, id string, patch map[string]interface{}) error {
	docID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch %s/%s: %w", collection, id, err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET data = data || $3::jsonb, updated_at = NOW()
		 WHERE collection = $1 AND id = $2`,
		collection, docID, raw)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document by id.
func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	docID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, docID)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
