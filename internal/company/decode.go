package company

import "encoding/json"

// Decode maps a raw persisted record to the canonical Company shape,
// filling the child sequences that older records may lack. It only fills
// missing optional fields; structurally invalid JSON is returned as a
// parse error, never repaired.
func Decode(raw json.RawMessage) (Company, error) {
	var c Company
	if err := json.Unmarshal(raw, &c); err != nil {
		return Company{}, err
	}
	if c.Notes == nil {
		c.Notes = []Note{}
	}
	if c.Documents == nil {
		c.Documents = []Document{}
	}
	if c.Todos == nil {
		c.Todos = []Todo{}
	}
	return c, nil
}

// DecodeAll decodes a persisted collection, migrating every element.
// Order is preserved.
func DecodeAll(data []byte) ([]Company, error) {
	var rawItems []json.RawMessage
	if err := json.Unmarshal(data, &rawItems); err != nil {
		return nil, err
	}

	companies := make([]Company, 0, len(rawItems))
	for _, raw := range rawItems {
		c, err := Decode(raw)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}
