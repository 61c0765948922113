package customer

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

// ID rendering. The add path mints Y-prefixed IDs while the getNextId
// dropdown helper still reports C-prefixed ones; both shapes exist in the
// data and the generator scans numeric suffixes regardless of prefix.
const (
	idPrefix      = "Y"
	idWidth       = 3
	helperPrefix  = "C"
	helperIDWidth = 5
)

type Service struct {
	repo repository.CustomerRepository
}

func NewService(repo repository.CustomerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer ids: %w", err)
	}

	customer := &model.Customer{
		CustomerID:       sequence.NextPrefixed(ids, idPrefix, idWidth),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		PreferredContact: req.PreferredContact,
		Senior:           req.Senior,
		ClassBalance:     0,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *Service) Get(ctx context.Context, customerID string) (*model.Customer, error) {
	customer, err := s.repo.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("customer")
		}
		return nil, err
	}
	return customer, nil
}

// Search finds the first customer matching the name filters, case
// insensitively. Last name narrows the match when provided.
func (s *Service) Search(ctx context.Context, firstName, lastName string) (*model.Customer, error) {
	customers, err := s.repo.Search(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, apperrors.NotFound("customer")
	}
	return customers[0], nil
}

func (s *Service) ListRefs(ctx context.Context) ([]*model.CustomerRef, error) {
	return s.repo.ListRefs(ctx)
}

// NextID is the dropdown helper preview of the next customer ID.
func (s *Service) NextID(ctx context.Context) (string, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list customer ids: %w", err)
	}
	return sequence.NextPrefixed(ids, helperPrefix, helperIDWidth), nil
}

func (s *Service) Delete(ctx context.Context, customerID string) error {
	if err := s.repo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("customer")
		}
		return err
	}
	return nil
}
