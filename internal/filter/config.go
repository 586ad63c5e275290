package filter

import (
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomFilter pairs a query parameter name with a handler that produces a
// predicate fragment. The handler receives the parameter's value and the full
// query so it can combine parameters.
type CustomFilter struct {
	Field   string
	Handler func(value string, query url.Values) bson.M
}

// Config declares which fields of an entity participate in each filter kind.
// Field names must be unique within a kind; listing the same field under
// contradictory kinds (say Booleans and Ranges) is undefined behavior.
type Config struct {
	ExactMatch []string
	Arrays     []string
	Ranges     []string
	Booleans   []string
	Search     []string
	Dates      []string
	Custom     []CustomFilter

	// DefaultSort and DefaultSelect use the same syntax as the sort/fields
	// query parameters and apply when those parameters are absent.
	DefaultSort   string
	DefaultSelect string
}

// merge returns a copy of base with every non-zero top-level field of
// override replacing the base value. Override wins per field, not per entry.
func merge(base, override Config) Config {
	out := base
	if override.ExactMatch != nil {
		out.ExactMatch = override.ExactMatch
	}
	if override.Arrays != nil {
		out.Arrays = override.Arrays
	}
	if override.Ranges != nil {
		out.Ranges = override.Ranges
	}
	if override.Booleans != nil {
		out.Booleans = override.Booleans
	}
	if override.Search != nil {
		out.Search = override.Search
	}
	if override.Dates != nil {
		out.Dates = override.Dates
	}
	if override.Custom != nil {
		out.Custom = override.Custom
	}
	if override.DefaultSort != "" {
		out.DefaultSort = override.DefaultSort
	}
	if override.DefaultSelect != "" {
		out.DefaultSelect = override.DefaultSelect
	}
	return out
}
