package instructor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/sequence"
)

const (
	idPrefix = "I"
	idWidth  = 5
)

type Service struct {
	repo repository.InstructorRepository
}

func NewService(repo repository.InstructorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateInstructorRequest) (*model.Instructor, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructor ids: %w", err)
	}

	instructor := &model.Instructor{
		InstructorID:     sequence.NextPrefixed(ids, idPrefix, idWidth),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		PreferredContact: req.PreferredContact,
	}

	if err := s.repo.Create(ctx, instructor); err != nil {
		return nil, fmt.Errorf("failed to create instructor: %w", err)
	}
	return instructor, nil
}

func (s *Service) Get(ctx context.Context, instructorID string) (*model.Instructor, error) {
	instructor, err := s.repo.Get(ctx, instructorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("instructor")
		}
		return nil, err
	}
	return instructor, nil
}

func (s *Service) Search(ctx context.Context, firstName, lastName string) (*model.Instructor, error) {
	instructors, err := s.repo.Search(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if len(instructors) == 0 {
		return nil, apperrors.NotFound("instructor")
	}
	return instructors[0], nil
}

func (s *Service) ListRefs(ctx context.Context) ([]*model.InstructorRef, error) {
	return s.repo.ListRefs(ctx)
}

func (s *Service) NextID(ctx context.Context) (string, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list instructor ids: %w", err)
	}
	return sequence.NextPrefixed(ids, idPrefix, idWidth), nil
}

func (s *Service) Delete(ctx context.Context, instructorID string) error {
	if err := s.repo.Delete(ctx, instructorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("instructor")
		}
		return err
	}
	return nil
}
