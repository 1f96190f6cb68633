package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository/memory"
)

func newSvc() *UserService {
	return NewUserService(memory.NewUsers())
}

func TestCreateOrGet_New(t *testing.T) {
	svc := newSvc()

	ref, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", ref.Username)
	assert.NotEmpty(t, ref.ID)
}

func TestCreateOrGet_IsIdempotent(t *testing.T) {
	svc := newSvc()

	first, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)
	second, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestCreateOrGet_EmptyUsername(t *testing.T) {
	svc := newSvc()

	for _, bad := range []string{"", "   "} {
		_, err := svc.CreateOrGet(context.Background(), bad)
		require.Error(t, err)
		assert.True(t, models.IsValidation(err))
		assert.Equal(t, "Username is required", err.Error())
	}
}

func TestList_InsertionOrder(t *testing.T) {
	svc := newSvc()

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := svc.CreateOrGet(context.Background(), name)
		require.NoError(t, err)
	}

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "carol", users[2].Username)
}

func TestAppendExercise_RequiredFields(t *testing.T) {
	svc := newSvc()
	ref, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)

	cases := []struct{ desc, dur string }{
		{"", "30"},
		{"run", ""},
		{"  ", "30"},
	}
	for _, c := range cases {
		_, _, err := svc.AppendExercise(context.Background(), ref.ID, c.desc, c.dur, "")
		require.Error(t, err)
		assert.True(t, models.IsValidation(err))
		assert.Equal(t, "Description and duration are required", err.Error())
	}
}

func TestAppendExercise_DurationCoercion(t *testing.T) {
	svc := newSvc()
	ref, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)

	// parseInt semantics: a leading integer coerces, trailing junk drops.
	_, ex, err := svc.AppendExercise(context.Background(), ref.ID, "run", "30min", "2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, 30, ex.Duration)

	// No leading integer at all is rejected rather than stored as a hole.
	_, _, err = svc.AppendExercise(context.Background(), ref.ID, "run", "abc", "")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Equal(t, "Duration must be an integer", err.Error())
}

func TestAppendExercise_InvalidDate(t *testing.T) {
	svc := newSvc()
	ref, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)

	_, _, err = svc.AppendExercise(context.Background(), ref.ID, "run", "30", "May first")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Equal(t, "Invalid Date format. Use yyyy-MM-DD.", err.Error())
}

func TestAppendExercise_DateDefaultsToNow(t *testing.T) {
	svc := newSvc()
	ref, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)

	before := time.Now().UTC()
	_, ex, err := svc.AppendExercise(context.Background(), ref.ID, "run", "30", "")
	require.NoError(t, err)
	assert.WithinDuration(t, before, ex.Date, 5*time.Second)
}

func TestAppendExercise_UnknownUser(t *testing.T) {
	svc := newSvc()

	_, _, err := svc.AppendExercise(context.Background(), "no-such-id", "run", "30", "")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
	assert.Equal(t, "User not found", err.Error())
}

func TestLogs_FullLogInAppendOrder(t *testing.T) {
	svc := newSvc()
	ref, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)

	for _, e := range []struct{ desc, date string }{
		{"run", "2023-05-01"},
		{"swim", "2023-05-02"},
		{"bike", "2023-05-03"},
	} {
		_, _, err := svc.AppendExercise(context.Background(), ref.ID, e.desc, "30", e.date)
		require.NoError(t, err)
	}

	got, log, err := svc.Logs(context.Background(), ref.ID, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, ref.ID, got.ID)
	require.Len(t, log, 3)
	assert.Equal(t, "run", log[0].Description)
	assert.Equal(t, "swim", log[1].Description)
	assert.Equal(t, "bike", log[2].Description)
}

func TestLogs_UnknownUserBeatsBadFilter(t *testing.T) {
	svc := newSvc()

	// The user lookup runs before filter validation.
	_, _, err := svc.Logs(context.Background(), "no-such-id", "bogus", "", "")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestLogs_BadFilterOnKnownUser(t *testing.T) {
	svc := newSvc()
	ref, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)

	_, _, err = svc.Logs(context.Background(), ref.ID, "", "", "-3")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"30", 30, true},
		{" 30 ", 30, true},
		{"30min", 30, true},
		{"30.5", 30, true},
		{"+7", 7, true},
		{"-5", -5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"min30", 0, false},
	}
	for _, c := range cases {
		got, ok := coerceInt(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "input %q", c.in)
		}
	}
}
