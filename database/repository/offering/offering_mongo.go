package offeringRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"travelbook/database"
	"travelbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOfferingRepo implements OfferingRepository using MongoDB.
type MongoOfferingRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferingRepo constructs a new instance of MongoOfferingRepo.
func NewMongoOfferingRepo() OfferingRepository {
	db := database.MongoClient.Database("travelbook")
	return &MongoOfferingRepo{coll: db.Collection("offerings")}
}

// Search fetches catalogue offerings matching the query, cheapest first.
// Origin and destination match case-insensitively.
func (repo *MongoOfferingRepo) Search(ctx context.Context, query models.SearchQuery) ([]models.Offering, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"kind":        query.Kind,
		"destination": caseInsensitive(query.Destination),
	}
	if query.Origin != "" {
		filter["origin"] = caseInsensitive(query.Origin)
	}

	opts := options.Find().SetSort(bson.D{{Key: "unit_price", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching offerings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var offerings []models.Offering
	for cursor.Next(ctxWithTimeout) {
		var o models.Offering
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("error decoding offering: %w", err)
		}
		offerings = append(offerings, o)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return offerings, nil
}

// GetByID retrieves an offering by its ID.
func (repo *MongoOfferingRepo) GetByID(ctx context.Context, offeringID string) (*models.Offering, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var offering models.Offering
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": offeringID}).Decode(&offering)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching offering %s: %w", offeringID, err)
	}
	return &offering, nil
}

// caseInsensitive builds an anchored, case-insensitive exact match for a
// user-supplied place name.
func caseInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}
