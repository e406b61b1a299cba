// Package repo implements the company repository over the key-value store.
// Every mutation rewrites the whole persisted collection; the model assumes
// a single writer per store.
package repo

import (
	"encoding/json"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/kv"
)

// Namespace is the store key holding the company collection.
const Namespace = "job-tracker-companies"

// Repository provides CRUD over the company collection.
type Repository struct {
	store kv.Store
}

// New creates a Repository backed by the given store.
func New(store kv.Store) *Repository {
	return &Repository{store: store}
}

// List returns every company in stored (insertion) order, with the
// missing-field migration applied. An absent namespace is an empty
// collection, not an error.
func (r *Repository) List() ([]company.Company, error) {
	data, ok, err := r.store.Get(Namespace)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if !ok || data == "" {
		return []company.Company{}, nil
	}

	companies, err := company.DecodeAll([]byte(data))
	if err != nil {
		return nil, errors.NewParse(Namespace, err)
	}
	return companies, nil
}

// Get returns the company with the given id, or a NOT_FOUND error.
func (r *Repository) Get(id string) (*company.Company, error) {
	companies, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if companies[i].ID == id {
			return &companies[i], nil
		}
	}
	return nil, errors.NewNotFound(id)
}

// Save upserts a company: an existing record with the same id is replaced
// in place (position preserved), otherwise the company is appended. This is
// the single write path for every mutation.
func (r *Repository) Save(c company.Company) error {
	companies, err := r.List()
	if err != nil {
		return err
	}

	replaced := false
	for i := range companies {
		if companies[i].ID == c.ID {
			companies[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		companies = append(companies, c)
	}

	return r.write(companies)
}

// Delete removes the company with the given id. Deleting an unknown id is
// a no-op.
func (r *Repository) Delete(id string) error {
	companies, err := r.List()
	if err != nil {
		return err
	}

	kept := companies[:0]
	for _, c := range companies {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	return r.write(kept)
}

// write persists the full collection.
func (r *Repository) write(companies []company.Company) error {
	data, err := json.Marshal(companies)
	if err != nil {
		return errors.NewInternal(err)
	}
	if err := r.store.Set(Namespace, string(data)); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
