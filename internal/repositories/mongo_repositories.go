package repositories

import (
	"context"
	"golang-jewelry-backend/internal/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Review Repository
type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection("reviews"),
	}
}

// Upsert keeps one review per (product, user): a resubmission replaces
// the rating and comment but preserves the original created_at.
func (r *reviewRepository) Upsert(ctx context.Context, review *models.Review) error {
	now := time.Now()
	review.UpdatedAt = now

	filter := bson.M{"product_id": review.ProductID, "user_id": review.UserID}
	update := bson.M{
		"$set": bson.M{
			"user_name":  review.UserName,
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"product_id": review.ProductID,
			"user_id":    review.UserID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	return r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(review)
}

func (r *reviewRepository) GetByProductID(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	var reviews []models.Review

	filter := bson.M{"product_id": productID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Banner Repository
type bannerRepository struct {
	collection *mongo.Collection
}

func NewBannerRepository(db *mongo.Database) BannerRepository {
	return &bannerRepository{
		collection: db.Collection("banners"),
	}
}

func (r *bannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	banner.CreatedAt = time.Now()
	banner.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, banner)
	if err != nil {
		return err
	}
	banner.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *bannerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	var banner models.Banner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&banner)
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) GetActive(ctx context.Context) ([]models.Banner, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *bannerRepository) List(ctx context.Context) ([]models.Banner, error) {
	return r.find(ctx, bson.M{})
}

func (r *bannerRepository) find(ctx context.Context, filter bson.M) ([]models.Banner, error) {
	var banners []models.Banner

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &banners); err != nil {
		return nil, err
	}

	return banners, nil
}

func (r *bannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	banner.UpdatedAt = time.Now()

	filter := bson.M{"_id": banner.ID}
	update := bson.M{"$set": banner}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

func (r *bannerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
