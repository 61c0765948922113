package sale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/sequence"
)

// Package validity lives in the free-text description, e.g. "Valid for 3
// months". Anything unparseable falls back to one month.
var validityPattern = regexp.MustCompile(`Valid for (\d+) month`)

type Service struct {
	repo      repository.SaleRepository
	customers repository.CustomerRepository
	packages  repository.PackageRepository
}

func NewService(repo repository.SaleRepository, customers repository.CustomerRepository, packages repository.PackageRepository) *Service {
	return &Service{repo: repo, customers: customers, packages: packages}
}

// CreateResult carries the recorded sale and the customer's credited balance.
type CreateResult struct {
	Sale       *model.Sale
	NewBalance int
}

// Create records a sale and credits the customer's class balance with the
// package's class count. The sale insert and the balance credit are separate
// store writes; a crash in between leaves the sale recorded without credits.
func (s *Service) Create(ctx context.Context, req *model.CreateSaleRequest) (*CreateResult, error) {
	pkg, err := s.packages.Get(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("package")
		}
		return nil, err
	}

	if _, err := s.customers.Get(ctx, req.CustomerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("customer")
		}
		return nil, err
	}

	maxID, err := s.repo.MaxSaleID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &model.Sale{
		SaleID:     sequence.NextNumeric(maxID),
		CustomerID: req.CustomerID,
		Package: model.SalePackage{
			PackageID:  pkg.PackageID,
			StartDate:  now,
			EndDate:    now.AddDate(0, validityMonths(pkg.Description), 0),
			AmountPaid: req.AmountPaid,
		},
		ModeOfPayment:   req.ModeOfPayment,
		PaymentDateTime: now,
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	balance, err := s.customers.AdjustBalance(ctx, req.CustomerID, classCredits(pkg.NumberOfClasses))
	if err != nil {
		return nil, fmt.Errorf("sale recorded but balance credit failed: %w", err)
	}

	return &CreateResult{Sale: sale, NewBalance: balance}, nil
}

func (s *Service) Get(ctx context.Context, saleID int) (*model.Sale, error) {
	sale, err := s.repo.Get(ctx, saleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("sale")
		}
		return nil, err
	}
	return sale, nil
}

func (s *Service) Search(ctx context.Context, customerID string) ([]*model.Sale, error) {
	sales, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, apperrors.NotFound("sales")
	}
	return sales, nil
}

func (s *Service) ListRefs(ctx context.Context) ([]*model.SaleRef, error) {
	return s.repo.ListRefs(ctx)
}

func (s *Service) NextID(ctx context.Context) (int, error) {
	maxID, err := s.repo.MaxSaleID(ctx)
	if err != nil {
		return 0, err
	}
	return sequence.NextNumeric(maxID), nil
}

// Delete removes a sale without reclaiming the credited classes.
func (s *Service) Delete(ctx context.Context, saleID int) error {
	if err := s.repo.Delete(ctx, saleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("sale")
		}
		return err
	}
	return nil
}

func validityMonths(description string) int {
	match := validityPattern.FindStringSubmatch(description)
	if match == nil {
		return 1
	}
	months, err := strconv.Atoi(match[1])
	if err != nil {
		return 1
	}
	return months
}

func classCredits(numberOfClasses string) int {
	switch numberOfClasses {
	case "1":
		return 1
	case "4":
		return 4
	case "10":
		return 10
	case model.NumberOfClassesUnlimited:
		return model.UnlimitedClassCredits
	default:
		return 0
	}
}
