package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
)

// DefaultDuration is assumed when a slot has no duration, in minutes.
const DefaultDuration = 60

// Checker detects weekly schedule conflicts between a proposed class slot
// and the classes already on the calendar. Only the first slot of each
// existing class is compared; multi-slot classes are not fully checked.
type Checker struct {
	classes repository.ClassRepository
}

func NewChecker(classes repository.ClassRepository) *Checker {
	return &Checker{classes: classes}
}

// Check reports whether the candidate slot overlaps any existing class on
// the same day. excludeClassID skips the class being edited. The scan stops
// at the first conflict found, in class-ID order.
//
// An unparseable candidate time is rejected outright, and store failures
// propagate instead of being reported as "no conflict".
func (c *Checker) Check(ctx context.Context, slot model.ScheduleSlot, excludeClassID string) (*model.ConflictResult, error) {
	if slot.Duration <= 0 {
		slot.Duration = DefaultDuration
	}

	start, err := minutesSinceMidnight(slot.Time)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid time %q, expected HH:MM", slot.Time))
	}
	end := start + slot.Duration

	classes, err := c.classes.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range classes {
		if excludeClassID != "" && existing.ClassID == excludeClassID {
			continue
		}
		if len(existing.Daytime) == 0 {
			continue
		}

		sched := existing.Daytime[0]
		if sched.Day != slot.Day {
			continue
		}

		existingStart, err := minutesSinceMidnight(sched.Time)
		if err != nil {
			// a malformed stored slot can never be matched, skip it
			continue
		}
		duration := sched.Duration
		if duration <= 0 {
			duration = DefaultDuration
		}
		existingEnd := existingStart + duration

		if overlaps(start, end, existingStart, existingEnd) {
			return &model.ConflictResult{
				HasConflict:   true,
				ConflictClass: existing.ClassName,
				ConflictTime:  sched.Time,
				Message:       fmt.Sprintf("Conflicts with %q (%s %s)", existing.ClassName, sched.Day, sched.Time),
			}, nil
		}
	}

	return &model.ConflictResult{HasConflict: false}, nil
}

// overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Slots that only touch at an endpoint do not
// conflict.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// minutesSinceMidnight parses a 24-hour "HH:MM" string.
func minutesSinceMidnight(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", t)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}

	return hour*60 + minute, nil
}
