package packages

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

// Senior packages are minted with an S prefix, everything else with P.
// Both prefixes draw from the same number line, so the numeric suffix stays
// unique across the whole collection. The getNextId helper previews with a
// wider P-prefixed rendering, a quirk kept for the existing UI.
const (
	idWidth       = 3
	helperIDWidth = 4
)

type Service struct {
	repo repository.PackageRepository
}

func NewService(repo repository.PackageRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePackageRequest) (*model.Package, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list package ids: %w", err)
	}

	prefix := "P"
	if req.PackageCategory == model.PackageCategorySenior {
		prefix = "S"
	}

	pkg := &model.Package{
		PackageID:       sequence.NextPrefixed(ids, prefix, idWidth),
		PackageName:     req.PackageName,
		Description:     req.Description,
		PackageCategory: req.PackageCategory,
		NumberOfClasses: req.NumberOfClasses,
		ClassType:       req.ClassType,
		Price:           req.Price,
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return pkg, nil
}

func (s *Service) Get(ctx context.Context, packageID string) (*model.Package, error) {
	pkg, err := s.repo.Get(ctx, packageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("package")
		}
		return nil, err
	}
	return pkg, nil
}

func (s *Service) Search(ctx context.Context, name string) ([]*model.Package, error) {
	packages, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, apperrors.NotFound("package")
	}
	return packages, nil
}

func (s *Service) ListRefs(ctx context.Context) ([]*model.PackageRef, error) {
	return s.repo.ListRefs(ctx)
}

func (s *Service) NextID(ctx context.Context) (string, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list package ids: %w", err)
	}
	return sequence.NextPrefixed(ids, "P", helperIDWidth), nil
}

func (s *Service) Delete(ctx context.Context, packageID string) error {
	if err := s.repo.Delete(ctx, packageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("package")
		}
		return err
	}
	return nil
}
