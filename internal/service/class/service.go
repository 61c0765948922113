package class

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
	"github.com/yogahom/studio-api/internal/service/schedule"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/sequence"
)

const (
	idPrefix = "A"
	idWidth  = 3
)

type Service struct {
	repo    repository.ClassRepository
	checker *schedule.Checker
}

func NewService(repo repository.ClassRepository, checker *schedule.Checker) *Service {
	return &Service{repo: repo, checker: checker}
}

// Create adds a class after checking its first weekly slot for conflicts.
// On conflict the result is returned alongside the error so the handler can
// attach it to the 409 body.
func (s *Service) Create(ctx context.Context, req *model.CreateClassRequest) (*model.Class, *model.ConflictResult, error) {
	if len(req.Daytime) > 0 {
		conflict, err := s.checker.Check(ctx, req.Daytime[0], "")
		if err != nil {
			return nil, nil, err
		}
		if conflict.HasConflict {
			return nil, conflict, apperrors.Conflict("Schedule conflict detected")
		}
	}

	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list class ids: %w", err)
	}

	payRate := req.PayRate
	if payRate == 0 {
		payRate = model.DefaultPayRate
	}

	class := &model.Class{
		ClassID:      sequence.NextPrefixed(ids, idPrefix, idWidth),
		ClassName:    req.ClassName,
		InstructorID: req.InstructorID,
		ClassType:    req.ClassType,
		Description:  req.Description,
		Daytime:      model.ScheduleList(req.Daytime),
		PayRate:      payRate,
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, nil, fmt.Errorf("failed to create class: %w", err)
	}
	return class, nil, nil
}

func (s *Service) Get(ctx context.Context, classID string) (*model.Class, error) {
	class, err := s.repo.Get(ctx, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("class")
		}
		return nil, err
	}
	return class, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Class, error) {
	return s.repo.List(ctx)
}

func (s *Service) NextID(ctx context.Context) (string, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list class ids: %w", err)
	}
	return sequence.NextPrefixed(ids, idPrefix, idWidth), nil
}

// CheckConflict runs a standalone conflict check for the add-class form.
func (s *Service) CheckConflict(ctx context.Context, slot model.ScheduleSlot) (*model.ConflictResult, error) {
	return s.checker.Check(ctx, slot, "")
}

func (s *Service) Delete(ctx context.Context, classID string) error {
	if err := s.repo.Delete(ctx, classID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("class")
		}
		return err
	}
	return nil
}
