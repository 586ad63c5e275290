package filter

import (
	"net/url"
	"strconv"
	"strings"

	apperrors "ecommerce-api/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Entity names with built-in filter configurations.
const (
	EntityProducts      = "products"
	EntityBrands        = "brands"
	EntityUsers         = "users"
	EntityCategories    = "categories"
	EntitySubCategories = "subcategories"
)

// Func is a filter bound to an entity configuration.
type Func func(query url.Values) Result

// Registry maps entity names to filter configurations. Construct it once at
// startup and inject it; Register is not safe under concurrent request load.
type Registry struct {
	engine  *Engine
	configs map[string]Config
}

// NewRegistry creates a registry seeded with the built-in entity configs.
func NewRegistry() *Registry {
	r := &Registry{
		engine:  NewEngine(false),
		configs: make(map[string]Config),
	}
	for name, cfg := range builtinConfigs() {
		r.configs[name] = cfg
	}
	return r
}

// Get returns a bound filter for a registered entity, or
// ErrFilterConfigNotFound. A missing config is a programming error, not a
// request error.
func (r *Registry) Get(entity string) (Func, error) {
	cfg, ok := r.configs[entity]
	if !ok {
		return nil, apperrors.ErrFilterConfigNotFound
	}
	return r.bind(cfg), nil
}

// Register adds or replaces an entity configuration. Intended for startup
// only.
func (r *Registry) Register(entity string, cfg Config) {
	r.configs[entity] = cfg
}

// Create returns a filter for the entity with override merged over the
// registered base config (override wins per top-level field), or
// ErrFilterConfigNotFound when the entity is unknown.
func (r *Registry) Create(entity string, override Config) (Func, error) {
	base, ok := r.configs[entity]
	if !ok {
		return nil, apperrors.ErrFilterConfigNotFound
	}
	return r.bind(merge(base, override)), nil
}

func (r *Registry) bind(cfg Config) Func {
	return func(query url.Values) Result {
		return r.engine.Process(query, cfg)
	}
}

func builtinConfigs() map[string]Config {
	return map[string]Config{
		EntityProducts: {
			ExactMatch: []string{"category", "brand"},
			Arrays:     []string{"subCategories", "colors", "sizes"},
			Ranges: []string{
				"price",
				"priceAfterDiscount",
				"ratingsAverage",
				"ratingsQuantity",
				"quantity",
				"sold",
			},
			Booleans: []string{"isActive"},
			Search:   []string{"title", "description"},
			Dates:    []string{"createdAt", "updatedAt"},
			Custom: []CustomFilter{
				{Field: "price_range", Handler: priceRangeHandler},
			},
			DefaultSort: "-createdAt",
		},
		EntityBrands: {
			Search:      []string{"name"},
			Dates:       []string{"createdAt", "updatedAt"},
			DefaultSort: "-createdAt",
		},
		EntityUsers: {
			ExactMatch:    []string{"role"},
			Booleans:      []string{"active"},
			Search:        []string{"name", "email", "phone"},
			Dates:         []string{"createdAt", "updatedAt"},
			DefaultSort:   "-createdAt",
			DefaultSelect: "-password,-refreshToken,-passwordResetCode,-passwordResetExpires",
		},
		EntityCategories: {
			Search:      []string{"name"},
			Dates:       []string{"createdAt", "updatedAt"},
			DefaultSort: "-createdAt",
		},
		EntitySubCategories: {
			ExactMatch:  []string{"category"},
			Search:      []string{"name"},
			Dates:       []string{"createdAt", "updatedAt"},
			DefaultSort: "-createdAt",
		},
	}
}

// priceRangeHandler parses "min-max" shorthand, e.g. price_range=100-500.
// Either bound may be omitted ("100-" or "-500").
func priceRangeHandler(value string, _ url.Values) bson.M {
	lo, hi, ok := strings.Cut(value, "-")
	if !ok {
		return nil
	}

	bounds := bson.M{}
	if n, err := strconv.ParseFloat(strings.TrimSpace(lo), 64); err == nil {
		bounds["$gte"] = n
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(hi), 64); err == nil {
		bounds["$lte"] = n
	}
	if len(bounds) == 0 {
		return nil
	}
	return bson.M{"price": bounds}
}
