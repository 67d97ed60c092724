package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beautytime/internal/common"
	"beautytime/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAdminRepository struct {
	collection *mongo.Collection
}

func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{
		collection: db.Collection("admins"),
	}
}

func (r *MongoAdminRepository) Insert(ctx context.Context, a *models.Admin) (*models.Admin, error) {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("failed to insert admin: %w", err)
	}
	a.ID = result.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *MongoAdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	return &admin, nil
}

func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin by email: %w", err)
	}
	return &admin, nil
}

func (r *MongoAdminRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	query := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}

	count, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to check existing admin: %w", err)
	}
	return count > 0, nil
}

func (r *MongoAdminRepository) UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.Admin, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Username != nil {
		set["username"] = *req.Username
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var admin models.Admin
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("failed to update admin profile: %w", err)
	}
	return &admin, nil
}

func (r *MongoAdminRepository) UpdateLastLogin(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"lastLogin": time.Now()}})
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
