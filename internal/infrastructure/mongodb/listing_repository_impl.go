package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/repository"
)

type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{coll: db.Collection(listingsCollection)}
}

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, l)
	if err != nil {
		return err
	}
	l.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Listing, error) {
	l := &entity.Listing{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *ListingRepository) Update(ctx context.Context, l *entity.Listing) error {
	l.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Find(ctx context.Context, f repository.ListingFilter, page, limit int) ([]entity.Listing, int64, error) {
	filter := buildListingFilter(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	listings := []entity.Listing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *ListingRepository) FindBySeller(ctx context.Context, seller primitive.ObjectID) ([]entity.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"seller": seller}, opts)
	if err != nil {
		return nil, err
	}
	listings := []entity.Listing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// buildListingFilter translates the structured predicate into a Mongo
// query document. Conditions combine with AND; the location condition
// is an OR over city and state. Full-text search rides on the title +
// description text index, ranking and tokenization are Mongo's.
func buildListingFilter(f repository.ListingFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}
	if f.Location != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"location.city": re},
			bson.M{"location.state": re},
		}
	}
	if f.Search != "" {
		filter["$text"] = bson.M{"$search": f.Search}
	}
	return filter
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
