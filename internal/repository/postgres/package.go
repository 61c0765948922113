package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yogahom/studio-api/internal/model"
)

func (r *packageRepository) Create(ctx context.Context, pkg *model.Package) error {
	query := `
		INSERT INTO packages (
			package_id, package_name, description, package_category,
			number_of_classes, class_type, price
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		pkg.PackageID,
		pkg.PackageName,
		pkg.Description,
		pkg.PackageCategory,
		pkg.NumberOfClasses,
		pkg.ClassType,
		pkg.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *packageRepository) Get(ctx context.Context, packageID string) (*model.Package, error) {
	query := `
		SELECT package_id, package_name, description, package_category,
			   number_of_classes, class_type, price
		FROM packages
		WHERE package_id = $1
	`
	var pkg model.Package
	if err := r.db.GetContext(ctx, &pkg, query, packageID); err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return &pkg, nil
}

func (r *packageRepository) Delete(ctx context.Context, packageID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE package_id = $1`, packageID)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("package not found: %w", sql.ErrNoRows)
	}
	return nil
}

func (r *packageRepository) ListRefs(ctx context.Context) ([]*model.PackageRef, error) {
	query := `SELECT package_id, package_name FROM packages ORDER BY package_id`
	var refs []*model.PackageRef
	if err := r.db.SelectContext(ctx, &refs, query); err != nil {
		return nil, fmt.Errorf("failed to list package refs: %w", err)
	}
	return refs, nil
}

func (r *packageRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT package_id FROM packages`); err != nil {
		return nil, fmt.Errorf("failed to list package ids: %w", err)
	}
	return ids, nil
}

func (r *packageRepository) SearchByName(ctx context.Context, name string) ([]*model.Package, error) {
	query := `
		SELECT package_id, package_name, description, package_category,
			   number_of_classes, class_type, price
		FROM packages
		WHERE package_name ILIKE '%' || $1 || '%'
		ORDER BY package_id
	`
	var packages []*model.Package
	if err := r.db.SelectContext(ctx, &packages, query, name); err != nil {
		return nil, fmt.Errorf("failed to search packages: %w", err)
	}
	return packages, nil
}
