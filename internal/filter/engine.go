// Package filter translates flat query parameters into MongoDB query
// predicates, sort orders, and field projections, driven by a per-entity
// configuration.
package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result is the output of processing a query against a config: a bson
// predicate, an ordered sort spec, and a field projection. It is built once
// per request and handed straight to the repository layer.
type Result struct {
	Filter bson.M
	Sort   bson.D
	Select bson.D
}

// Engine processes query parameters according to a Config.
type Engine struct {
	caseSensitive bool
}

// NewEngine creates a filter engine. Search matching is case-insensitive
// unless caseSensitive is set.
func NewEngine(caseSensitive bool) *Engine {
	return &Engine{caseSensitive: caseSensitive}
}

// Process builds a Result from the query parameters and the entity config.
// Malformed range and date bounds are silently omitted rather than rejected.
func (e *Engine) Process(query url.Values, cfg Config) Result {
	f := bson.M{}

	e.processExactMatches(query, f, cfg.ExactMatch)
	e.processRanges(query, f, cfg.Ranges)
	e.processArrays(query, f, cfg.Arrays)
	e.processBooleans(query, f, cfg.Booleans)
	e.processSearch(query, f, cfg.Search)
	e.processDates(query, f, cfg.Dates)
	e.processCustom(query, f, cfg.Custom)

	sortSpec := parseSortString(cfg.DefaultSort)
	if s := query.Get("sort"); s != "" {
		sortSpec = parseSortString(s)
	}

	selectSpec := parseSelectString(cfg.DefaultSelect)
	if s := query.Get("fields"); s != "" {
		selectSpec = parseSelectString(s)
	}

	return Result{Filter: f, Sort: sortSpec, Select: selectSpec}
}

// processExactMatches emits equality for a single value and $in membership
// for a comma-separated list.
func (e *Engine) processExactMatches(query url.Values, f bson.M, fields []string) {
	for _, field := range fields {
		raw := query.Get(field)
		if raw == "" {
			continue
		}
		values := parseCommaSeparated(raw)
		switch len(values) {
		case 0:
		case 1:
			f[field] = coerceID(values[0])
		default:
			f[field] = bson.M{"$in": coerceIDs(values)}
		}
	}
}

// processRanges handles exact_<field> overrides and the four bound
// operators. exact_<field> wins over any bounds supplied for the same field.
func (e *Engine) processRanges(query url.Values, f bson.M, fields []string) {
	for _, field := range fields {
		if exact := query.Get("exact_" + field); exact != "" {
			f[field] = coerceNumber(exact)
			continue
		}

		bounds := bson.M{}
		for _, op := range []string{"gte", "lte", "gt", "lt"} {
			if v := query.Get(field + "_" + op); v != "" {
				bounds["$"+op] = coerceNumber(v)
			}
		}
		if len(bounds) > 0 {
			f[field] = bounds
		}
	}
}

func (e *Engine) processArrays(query url.Values, f bson.M, fields []string) {
	for _, field := range fields {
		raw := query.Get(field)
		if raw == "" {
			continue
		}
		if values := parseCommaSeparated(raw); len(values) > 0 {
			f[field] = bson.M{"$in": coerceIDs(values)}
		}
	}
}

// processBooleans treats the literal "true" as true and any other present
// value as false; absence emits no constraint.
func (e *Engine) processBooleans(query url.Values, f bson.M, fields []string) {
	for _, field := range fields {
		if _, ok := query[field]; !ok {
			continue
		}
		f[field] = query.Get(field) == "true"
	}
}

// processSearch emits a disjunctive group of substring matches across the
// configured searchable fields.
func (e *Engine) processSearch(query url.Values, f bson.M, fields []string) {
	keyword := strings.TrimSpace(query.Get("search"))
	if keyword == "" || len(fields) == 0 {
		return
	}

	options := "i"
	if e.caseSensitive {
		options = ""
	}

	or := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: bson.M{"$regex": keyword, "$options": options}})
	}
	f["$or"] = or
}

// processDates mirrors the numeric range pattern with _after/_before bounds
// and date-parsed values. Unparseable dates are dropped.
func (e *Engine) processDates(query url.Values, f bson.M, fields []string) {
	for _, field := range fields {
		if exact := query.Get("exact_" + field); exact != "" {
			if t, ok := parseDate(exact); ok {
				f[field] = t
			}
			continue
		}

		bounds := bson.M{}
		if v := query.Get(field + "_after"); v != "" {
			if t, ok := parseDate(v); ok {
				bounds["$gte"] = t
			}
		}
		if v := query.Get(field + "_before"); v != "" {
			if t, ok := parseDate(v); ok {
				bounds["$lte"] = t
			}
		}
		if len(bounds) > 0 {
			f[field] = bounds
		}
	}
}

// processCustom invokes handlers in declaration order; later handlers may
// overwrite keys emitted by earlier ones.
func (e *Engine) processCustom(query url.Values, f bson.M, customs []CustomFilter) {
	for _, custom := range customs {
		if custom.Handler == nil {
			continue
		}
		if _, ok := query[custom.Field]; !ok {
			continue
		}
		fragment := custom.Handler(query.Get(custom.Field), query)
		for k, v := range fragment {
			f[k] = v
		}
	}
}

// parseSortString parses "-createdAt,title" into an ordered sort spec, "-"
// meaning descending. Equal-key rows keep the store's natural order; no
// secondary tie-break is added.
func parseSortString(s string) bson.D {
	var sort bson.D
	for _, part := range strings.Split(s, ",") {
		field := strings.TrimSpace(part)
		if field == "" {
			continue
		}
		direction := 1
		if strings.HasPrefix(field, "-") {
			direction = -1
			field = field[1:]
		}
		if field != "" {
			sort = append(sort, bson.E{Key: field, Value: direction})
		}
	}
	return sort
}

// parseSelectString parses "name,-password" into a projection, "-" meaning
// exclusion. Mixed inclusion/exclusion is passed through as given.
func parseSelectString(s string) bson.D {
	var sel bson.D
	for _, part := range strings.Split(s, ",") {
		field := strings.TrimSpace(part)
		if field == "" {
			continue
		}
		include := 1
		if strings.HasPrefix(field, "-") {
			include = 0
			field = field[1:]
		}
		if field != "" {
			sel = append(sel, bson.E{Key: field, Value: include})
		}
	}
	return sel
}

func parseCommaSeparated(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// coerceNumber returns a float64 when the value parses fully as a float,
// otherwise the string itself for literal comparison.
func coerceNumber(value string) interface{} {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	return value
}

// coerceID converts 24-char hex strings into ObjectIDs so that reference
// fields match stored _id values; everything else passes through unchanged.
func coerceID(value string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(value); err == nil {
		return oid
	}
	return value
}

func coerceIDs(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = coerceID(v)
	}
	return out
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
