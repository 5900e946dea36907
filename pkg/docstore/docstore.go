// Package docstore provides access to the site's content collections as
// schemaless documents keyed by collection name and document id. Consumers
// treat it as a black box: list, create, partial update, delete. Field
// presence is not guaranteed, so decoding applies defaults on read.
package docstore

import (
	"context"
	"errors"
)

// Collection names used by the site.
const (
	CollectionApplications = "applications"
	CollectionPositions    = "positions"
	CollectionTeam         = "team"
)

// ErrNotFound is returned when a document id does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Document is one raw document: a store-assigned id plus an open-ended field map.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is the document store collaborator.
type Store interface {
	// List returns every document in the collection.
	List(ctx context.Context, collection string) ([]Document, error)
	// Create inserts a document and returns the assigned id.
	Create(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	// Update merges patch into the document's fields (partial update).
	Update(ctx context.Context, collection, id string, patch map[string]interface{}) error
	// Delete removes the document by id.
	Delete(ctx context.Context, collection, id string) error
}
