package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

// SolutionRepo handles the persistence of maze solutions.
type SolutionRepo struct {
	collection *mongo.Collection
}

// NewSolutionRepo creates a new SolutionRepo with the given MongoDB client, database name, and collection name.
func NewSolutionRepo(client *mongo.Client, dbName, collectionName string) *SolutionRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolutionRepo{
		collection: collection,
	}
}

// Save inserts or updates a solution in the repository.
func (r *SolutionRepo) Save(ctx context.Context, solution *dmn.Solution) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": solution.ID}
	update := bson.M{
		"$set": bson.M{
			"gridHash":  solution.GridHash,
			"rows":      solution.Rows,
			"reachable": solution.Reachable,
			"steps":     solution.Steps,
			"path":      solution.Path,
			"rendered":  solution.Rendered,
			"solvedAt":  solution.SolvedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a solution by its ID.
// Returns dmn.ErrSolutionNotFound if there is none.
func (r *SolutionRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *SolutionRepo) findOne(ctx context.Context, filter bson.M) (*dmn.Solution, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var solution dmn.Solution
	if err := r.collection.FindOne(ctx, filter).Decode(&solution); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrSolutionNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &solution, nil
}
