// Package mongodb is the durable record store. Each user is one
// document in the users collection with its exercise log embedded, so an
// append is a single atomic $push.
package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
)

const usersCollection = "users"

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Log      []models.Exercise  `bson:"log"`
}

func (d userDoc) toModel() models.User {
	log := d.Log
	if log == nil {
		log = []models.Exercise{}
	}
	return models.User{ID: d.ID.Hex(), Username: d.Username, Log: log}
}

type usersRepo struct {
	coll *mongo.Collection
}

func NewUsers(db *mongo.Database) repository.Users {
	return &usersRepo{coll: db.Collection(usersCollection)}
}

func (r *usersRepo) Create(ctx context.Context, username string) (models.User, error) {
	doc := userDoc{
		ID:       primitive.NewObjectID(),
		Username: username,
		Log:      []models.Exercise{},
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return models.User{}, err
	}
	return doc.toModel(), nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return doc.toModel(), nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never resolve to a document.
		return models.User{}, models.ErrUserNotFound
	}

	var doc userDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return doc.toModel(), nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.UserRef, error) {
	opts := options.Find().SetProjection(bson.M{"username": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]models.UserRef, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.UserRef{ID: d.ID.Hex(), Username: d.Username})
	}
	return out, nil
}

func (r *usersRepo) AppendExercise(ctx context.Context, userID string, ex models.Exercise) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, models.ErrUserNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$push": bson.M{"log": ex}}

	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return doc.toModel(), nil
}

// EnsureIndexes creates the unique username index backing the
// create-or-get lookup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
