package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/memoboard/memoboard-api/internal/core/domain"
)

const profilesCollection = "profiles"

type MongoProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{coll: db.Collection(profilesCollection)}
}

type mongoProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username"`
	AvatarKey   string             `bson:"avatar_key"`
	Bio         string             `bson:"bio,omitempty"`
	PhoneNumber string             `bson:"phone_number,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	doc := mongoProfile{
		Username:    profile.Username,
		AvatarKey:   profile.AvatarKey,
		Bio:         profile.Bio,
		PhoneNumber: profile.PhoneNumber,
		CreatedAt:   profile.CreatedAt.Unix(),
		UpdatedAt:   profile.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	return r.FindByUsername(ctx, profile.Username)
}

func (r *MongoProfileRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &domain.Profile{
		ID:          mp.ID.Hex(),
		Username:    mp.Username,
		AvatarKey:   mp.AvatarKey,
		Bio:         mp.Bio,
		PhoneNumber: mp.PhoneNumber,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}, nil
}

// Update writes avatar key, bio and phone number in a single document update,
// so the account form saves all-or-nothing.
func (r *MongoProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": profile.Username},
		bson.M{"$set": bson.M{
			"avatar_key":   profile.AvatarKey,
			"bio":          profile.Bio,
			"phone_number": profile.PhoneNumber,
			"updated_at":   profile.UpdatedAt.Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// EnsureIndexes enforces the one-profile-per-user rule at the store level.
func (r *MongoProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
