// Package repository provides data access operations for the application.
package repository

import (
	"context"

	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Lookup describes a relation expansion: documents from another collection
// joined on a reference field. Single unwinds the joined array into one
// embedded document.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	Single       bool
}

// QueryOptions carries the filter engine output plus optional lookups into a
// paginated query.
type QueryOptions struct {
	Result  filter.Result
	Lookups []Lookup
}

// Paginate runs a windowed fetch plus an unwindowed count against a
// collection and assembles the page metadata. The two queries are not
// transactional: a document inserted or removed between them can leave
// totalCount slightly stale relative to the items, which is acceptable for
// catalog listings.
func Paginate[T any](ctx context.Context, coll *mongo.Collection, req models.PageRequest, opts QueryOptions) (*models.Page[T], error) {
	predicate := opts.Result.Filter
	if predicate == nil {
		predicate = bson.M{}
	}

	total, err := coll.CountDocuments(ctx, predicate)
	if err != nil {
		return nil, err
	}

	var results []T
	if len(opts.Lookups) > 0 {
		results, err = fetchWithLookups[T](ctx, coll, predicate, req, opts)
	} else {
		results, err = fetchPlain[T](ctx, coll, predicate, req, opts.Result)
	}
	if err != nil {
		return nil, err
	}

	if results == nil {
		results = []T{}
	}

	return &models.Page[T]{
		Results:    results,
		Pagination: models.NewPagination(req.Page, req.Limit, int(total)),
	}, nil
}

func fetchPlain[T any](ctx context.Context, coll *mongo.Collection, predicate bson.M, req models.PageRequest, result filter.Result) ([]T, error) {
	findOpts := options.Find().
		SetSkip(int64(req.Skip())).
		SetLimit(int64(req.Limit))
	if len(result.Sort) > 0 {
		findOpts.SetSort(result.Sort)
	}
	if len(result.Select) > 0 {
		findOpts.SetProjection(result.Select)
	}

	cursor, err := coll.Find(ctx, predicate, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// fetchWithLookups runs the windowed fetch as an aggregation so referenced
// documents can be joined in. Sort and skip come before the lookups to keep
// the joins bounded to one page.
func fetchWithLookups[T any](ctx context.Context, coll *mongo.Collection, predicate bson.M, req models.PageRequest, opts QueryOptions) ([]T, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: predicate}},
	}
	if len(opts.Result.Sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: opts.Result.Sort}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: int64(req.Skip())}},
		bson.D{{Key: "$limit", Value: int64(req.Limit)}},
	)

	for _, lk := range opts.Lookups {
		pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.M{
			"from":         lk.From,
			"localField":   lk.LocalField,
			"foreignField": lk.ForeignField,
			"as":           lk.As,
		}}})
		if lk.Single {
			pipeline = append(pipeline, bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + lk.As,
				"preserveNullAndEmptyArrays": true,
			}}})
		}
	}

	if len(opts.Result.Select) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: opts.Result.Select}})
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
