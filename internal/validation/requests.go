package validation

import (
	"encoding/json"
	"fmt"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// CreateBookRequest is the body of POST /books.
type CreateBookRequest struct {
	ISBN      string `json:"isbn" jsonschema:"minLength=1"`
	AmazonURL string `json:"amazon_url,omitempty" jsonschema:"format=uri"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages" jsonschema:"minimum=1"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

// Book converts the request into the stored record.
func (r CreateBookRequest) Book() *entities.Book {
	return &entities.Book{
		ISBN:      r.ISBN,
		AmazonURL: r.AmazonURL,
		Author:    r.Author,
		Language:  r.Language,
		Pages:     r.Pages,
		Publisher: r.Publisher,
		Title:     r.Title,
		Year:      r.Year,
	}
}

// DecodeCreate validates body and decodes it into a CreateBookRequest. The
// returned error is only set when a body that passed validation still could
// not be decoded.
func DecodeCreate(body []byte) (CreateBookRequest, Result, error) {
	var req CreateBookRequest

	obj, res := ParseObject(body)
	if !res.Valid() {
		return req, res, nil
	}
	if res = ValidateCreate(obj); !res.Valid() {
		return req, res, nil
	}

	if err := decodeObject(obj, &req); err != nil {
		return req, res, fmt.Errorf("failed to decode create request: %w", err)
	}
	return req, res, nil
}

// DecodeUpdate validates body and decodes it into a BookPatch.
func DecodeUpdate(body []byte) (entities.BookPatch, Result, error) {
	var patch entities.BookPatch

	obj, res := ParseObject(body)
	if !res.Valid() {
		return patch, res, nil
	}
	if res = ValidateUpdate(obj); !res.Valid() {
		return patch, res, nil
	}

	if err := decodeObject(obj, &patch); err != nil {
		return patch, res, fmt.Errorf("failed to decode update request: %w", err)
	}
	return patch, res, nil
}

// integerProperties hold JSON numbers that must land in Go ints.
var integerProperties = []string{"pages", "year"}

// decodeObject decodes a validated object into dst. Integer properties are
// rewritten in plain form first so that 150.0 or 2e2 decode into an int.
func decodeObject(obj map[string]any, dst any) error {
	for _, name := range integerProperties {
		if v, ok := obj[name]; ok {
			if n, ok := asInt64(v); ok {
				obj[name] = n
			}
		}
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
