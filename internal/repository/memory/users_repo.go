// Package memory is the ephemeral record store: everything lives in an
// insertion-ordered slice and is gone on restart.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
)

type usersRepo struct {
	mu    sync.Mutex
	users []models.User
}

func NewUsers() repository.Users {
	return &usersRepo{}
}

func (r *usersRepo) Create(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Log:      []models.Exercise{},
	}
	r.users = append(r.users, u)
	return clone(u), nil
}

func (r *usersRepo) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == username {
			return clone(r.users[i]), nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (r *usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			return clone(r.users[i]), nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (r *usersRepo) List(_ context.Context) ([]models.UserRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.UserRef, 0, len(r.users))
	for i := range r.users {
		out = append(out, r.users[i].Ref())
	}
	return out, nil
}

func (r *usersRepo) AppendExercise(_ context.Context, userID string, ex models.Exercise) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Log = append(r.users[i].Log, ex)
			return clone(r.users[i]), nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

// clone copies the log slice so callers never alias store-owned memory.
func clone(u models.User) models.User {
	out := u
	out.Log = make([]models.Exercise, len(u.Log))
	copy(out.Log, u.Log)
	return out
}
