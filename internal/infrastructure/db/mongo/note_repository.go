package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/memoboard/memoboard-api/internal/core/domain"
)

const notesCollection = "notes"

type MongoNoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *MongoNoteRepository {
	return &MongoNoteRepository{coll: db.Collection(notesCollection)}
}

type mongoNote struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Text          string             `bson:"text"`
	OwnerUsername string             `bson:"owner_username"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *MongoNoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	doc := mongoNote{
		Title:         note.Title,
		Text:          note.Text,
		OwnerUsername: note.OwnerUsername,
		CreatedAt:     note.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert note: unexpected inserted id type %T", res.InsertedID)
	}

	created := *note
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoNoteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed id can never match a stored note
		return nil, domain.ErrNoteNotFound
	}

	var mn mongoNote
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return toDomainNote(&mn), nil
}

// UpdateContent writes only title and text; owner and creation timestamp are
// immutable. A zero match count means the note vanished under us — report
// not found so a racing delete wins cleanly.
func (r *MongoNoteRepository) UpdateContent(ctx context.Context, id, title, text string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNoteNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"title": title, "text": text}},
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (r *MongoNoteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNoteNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// ListAll returns the whole board sorted by owner username descending,
// newest first within a single owner.
func (r *MongoNoteRepository) ListAll(ctx context.Context) ([]domain.Note, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "owner_username", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cur.Close(ctx)

	var notes []domain.Note
	for cur.Next(ctx) {
		var mn mongoNote
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, *toDomainNote(&mn))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// EnsureIndexes creates the owner index used by the board ordering.
func (r *MongoNoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_username", Value: -1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func toDomainNote(mn *mongoNote) *domain.Note {
	return &domain.Note{
		ID:            mn.ID.Hex(),
		Title:         mn.Title,
		Text:          mn.Text,
		OwnerUsername: mn.OwnerUsername,
		CreatedAt:     unixToTime(mn.CreatedAt),
	}
}
