package ops

import (
	"strings"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/repo"
)

// AddDocumentInput contains parameters for the AddDocument operation.
type AddDocumentInput struct {
	CompanyID string
	Name      string
	URL       string
}

// AddDocumentOutput contains the result of document mutations.
type AddDocumentOutput struct {
	DocumentID string          `json:"document_id"`
	Company    company.Company `json:"company"`
}

// AddDocument appends a document link to the company.
func AddDocument(r *repo.Repository, input AddDocumentInput) (*AddDocumentOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidRequest("document name is required")
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, errors.NewInvalidRequest("document url is required")
	}

	c, err := r.Get(input.CompanyID)
	if err != nil {
		return nil, err
	}

	id, err := company.NewID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	c.Documents = append(c.Documents, company.Document{ID: id, Name: name, URL: url})

	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &AddDocumentOutput{DocumentID: id, Company: *c}, nil
}

// DeleteDocumentInput contains parameters for the DeleteDocument operation.
type DeleteDocumentInput struct {
	CompanyID  string
	DocumentID string
}

// DeleteDocument removes a document link from the company.
func DeleteDocument(r *repo.Repository, input DeleteDocumentInput) (*AddDocumentOutput, error) {
	c, err := r.Get(input.CompanyID)
	if err != nil {
		return nil, err
	}

	kept := make([]company.Document, 0, len(c.Documents))
	found := false
	for _, d := range c.Documents {
		if d.ID == input.DocumentID {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return nil, errors.NewInvalidRequest("document not found: " + input.DocumentID)
	}

	c.Documents = kept
	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &AddDocumentOutput{DocumentID: input.DocumentID, Company: *c}, nil
}
