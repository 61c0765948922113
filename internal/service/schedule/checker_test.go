package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogahom/studio-api/internal/model"
)

type fakeClassRepo struct {
	classes []*model.Class
	err     error
}

func (f *fakeClassRepo) Create(ctx context.Context, class *model.Class) error { return nil }
func (f *fakeClassRepo) Get(ctx context.Context, classID string) (*model.Class, error) {
	return nil, nil
}
func (f *fakeClassRepo) Delete(ctx context.Context, classID string) error { return nil }
func (f *fakeClassRepo) List(ctx context.Context) ([]*model.Class, error) {
	return f.classes, f.err
}
func (f *fakeClassRepo) ListByInstructor(ctx context.Context, instructorID string) ([]*model.Class, error) {
	return nil, nil
}
func (f *fakeClassRepo) ListIDs(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeClassRepo) Count(ctx context.Context) (int, error)       { return len(f.classes), nil }

func existingClass(id, name, day, start string, duration int) *model.Class {
	return &model.Class{
		ClassID:   id,
		ClassName: name,
		Daytime: model.ScheduleList{
			{Day: day, Time: start, Duration: duration},
		},
	}
}

func TestCheckOverlap(t *testing.T) {
	repo := &fakeClassRepo{classes: []*model.Class{
		existingClass("A001", "Morning Flow", "Monday", "09:00", 60),
	}}
	checker := NewChecker(repo)

	tests := []struct {
		name     string
		slot     model.ScheduleSlot
		conflict bool
	}{
		{
			name:     "same slot conflicts",
			slot:     model.ScheduleSlot{Day: "Monday", Time: "09:00", Duration: 60},
			conflict: true,
		},
		{
			name:     "partial overlap at the tail conflicts",
			slot:     model.ScheduleSlot{Day: "Monday", Time: "09:30", Duration: 60},
			conflict: true,
		},
		{
			name:     "candidate spanning the existing slot conflicts",
			slot:     model.ScheduleSlot{Day: "Monday", Time: "08:30", Duration: 120},
			conflict: true,
		},
		{
			name:     "touching endpoints do not conflict",
			slot:     model.ScheduleSlot{Day: "Monday", Time: "10:00", Duration: 60},
			conflict: false,
		},
		{
			name:     "ending exactly at the start does not conflict",
			slot:     model.ScheduleSlot{Day: "Monday", Time: "08:00", Duration: 60},
			conflict: false,
		},
		{
			name:     "same time another day does not conflict",
			slot:     model.ScheduleSlot{Day: "Tuesday", Time: "09:00", Duration: 60},
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(context.Background(), tt.slot, "")
			require.NoError(t, err)
			assert.Equal(t, tt.conflict, result.HasConflict)
			if tt.conflict {
				assert.Equal(t, "Morning Flow", result.ConflictClass)
				assert.Contains(t, result.Message, "Morning Flow")
			}
		})
	}
}

func TestCheckDefaultsDurationTo60(t *testing.T) {
	repo := &fakeClassRepo{classes: []*model.Class{
		// stored slot has no duration, treated as one hour
		existingClass("A001", "Evening Stretch", "Friday", "18:00", 0),
	}}
	checker := NewChecker(repo)

	result, err := checker.Check(context.Background(), model.ScheduleSlot{Day: "Friday", Time: "18:30"}, "")
	require.NoError(t, err)
	assert.True(t, result.HasConflict)

	result, err = checker.Check(context.Background(), model.ScheduleSlot{Day: "Friday", Time: "19:00"}, "")
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckExcludesClassBeingEdited(t *testing.T) {
	repo := &fakeClassRepo{classes: []*model.Class{
		existingClass("A001", "Morning Flow", "Monday", "09:00", 60),
	}}
	checker := NewChecker(repo)

	result, err := checker.Check(context.Background(), model.ScheduleSlot{Day: "Monday", Time: "09:00", Duration: 60}, "A001")
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckOnlyFirstSlotIsCompared(t *testing.T) {
	repo := &fakeClassRepo{classes: []*model.Class{
		{
			ClassID:   "A002",
			ClassName: "Twice Weekly",
			Daytime: model.ScheduleList{
				{Day: "Monday", Time: "09:00", Duration: 60},
				{Day: "Wednesday", Time: "09:00", Duration: 60},
			},
		},
	}}
	checker := NewChecker(repo)

	// the Wednesday slot exists but is never checked
	result, err := checker.Check(context.Background(), model.ScheduleSlot{Day: "Wednesday", Time: "09:00", Duration: 60}, "")
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckRejectsMalformedTime(t *testing.T) {
	checker := NewChecker(&fakeClassRepo{})

	for _, bad := range []string{"", "9", "25:00", "09:61", "morning"} {
		_, err := checker.Check(context.Background(), model.ScheduleSlot{Day: "Monday", Time: bad}, "")
		assert.Error(t, err, "time %q should be rejected", bad)
	}
}

func TestCheckPropagatesStoreErrors(t *testing.T) {
	repo := &fakeClassRepo{err: errors.New("connection refused")}
	checker := NewChecker(repo)

	_, err := checker.Check(context.Background(), model.ScheduleSlot{Day: "Monday", Time: "09:00"}, "")
	assert.Error(t, err)
}

func TestCheckSkipsMalformedStoredSlots(t *testing.T) {
	repo := &fakeClassRepo{classes: []*model.Class{
		existingClass("A001", "Broken", "Monday", "whenever", 60),
		existingClass("A002", "Valid", "Monday", "10:00", 60),
	}}
	checker := NewChecker(repo)

	result, err := checker.Check(context.Background(), model.ScheduleSlot{Day: "Monday", Time: "10:00", Duration: 30}, "")
	require.NoError(t, err)
	assert.True(t, result.HasConflict)
	assert.Equal(t, "Valid", result.ConflictClass)
}

func TestMinutesSinceMidnight(t *testing.T) {
	got, err := minutesSinceMidnight("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, got)

	got, err = minutesSinceMidnight("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = minutesSinceMidnight("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, got)
}
