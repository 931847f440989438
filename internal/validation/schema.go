package validation

import (
	"github.com/invopop/jsonschema"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{Anonymous: true, DoNotReference: true}
}

// CreateSchema returns the JSON Schema of the book creation body.
func CreateSchema() *jsonschema.Schema {
	s := reflector().Reflect(&CreateBookRequest{})
	s.Title = "CreateBook"
	return s
}

// UpdateSchema returns the JSON Schema of the partial update body.
func UpdateSchema() *jsonschema.Schema {
	s := reflector().Reflect(&entities.BookPatch{})
	s.Title = "UpdateBook"
	return s
}
