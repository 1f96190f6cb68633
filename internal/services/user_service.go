package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/dates"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

// UserService owns input validation and orchestrates the record store.
// It is store-agnostic: the same instance works over the in-memory and
// the Mongo-backed repository.
type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

// CreateOrGet returns the existing user for username unchanged, or
// creates a new one with an empty log.
func (s *UserService) CreateOrGet(ctx context.Context, username string) (models.UserRef, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.UserRef{}, models.ValidationError("Username is required")
	}

	if u, err := s.r.GetByUsername(ctx, username); err == nil {
		return u.Ref(), nil
	} else if !models.IsNotFound(err) {
		return models.UserRef{}, err
	}

	u, err := s.r.Create(ctx, username)
	if err != nil {
		return models.UserRef{}, err
	}
	metrics.UsersCreated.Inc()
	return u.Ref(), nil
}

func (s *UserService) List(ctx context.Context) ([]models.UserRef, error) {
	return s.r.List(ctx)
}

// AppendExercise validates the raw fields, builds the exercise
// (defaulting the date to now) and appends it to the user's log.
func (s *UserService) AppendExercise(ctx context.Context, userID, description, duration, date string) (models.UserRef, models.Exercise, error) {
	description = strings.TrimSpace(description)
	if description == "" || strings.TrimSpace(duration) == "" {
		return models.UserRef{}, models.Exercise{}, models.ValidationError("Description and duration are required")
	}

	mins, ok := coerceInt(duration)
	if !ok {
		return models.UserRef{}, models.Exercise{}, models.ValidationError("Duration must be an integer")
	}

	when := time.Now().UTC()
	if date != "" {
		parsed, err := dates.Parse(date)
		if err != nil {
			return models.UserRef{}, models.Exercise{}, models.ValidationError("Invalid Date format. Use yyyy-MM-DD.")
		}
		when = parsed
	}

	ex := models.Exercise{Description: description, Duration: mins, Date: when}
	u, err := s.r.AppendExercise(ctx, userID, ex)
	if err != nil {
		return models.UserRef{}, models.Exercise{}, err
	}
	metrics.ExercisesRecorded.Inc()
	return u.Ref(), ex, nil
}

// Logs resolves the user, then applies the from/to/limit query to its
// log. The lookup runs first so an unknown user reports "User not found"
// even when the filters are also bad, matching the endpoint's contract.
func (s *UserService) Logs(ctx context.Context, userID, from, to, limit string) (models.UserRef, []models.LogEntry, error) {
	u, err := s.r.GetByID(ctx, userID)
	if err != nil {
		return models.UserRef{}, nil, err
	}

	q, err := ParseLogQuery(from, to, limit)
	if err != nil {
		return models.UserRef{}, nil, err
	}
	return u.Ref(), q.Apply(u.Log), nil
}

// coerceInt reads a leading integer the way JS parseInt does: optional
// sign, then digits, trailing junk ignored ("30min" -> 30). Input with
// no leading integer does not coerce.
func coerceInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
