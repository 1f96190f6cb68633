package repository

import (
	"context"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

// Users is the record store contract. The in-memory and the Mongo-backed
// implementations must satisfy it identically; nothing above this
// interface knows which one is active.
//
// GetByUsername, GetByID and AppendExercise return models.ErrUserNotFound
// when the user does not resolve, including when the id is not a
// well-formed identifier for the active store.
type Users interface {
	Create(ctx context.Context, username string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.UserRef, error)
	AppendExercise(ctx context.Context, userID string, ex models.Exercise) (models.User, error)
}
