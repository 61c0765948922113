package sale

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogahom/studio-api/internal/model"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
)

type fakeSaleRepo struct {
	sales  []*model.Sale
	maxID  int
	stored *model.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *model.Sale) error {
	f.stored = s
	f.sales = append(f.sales, s)
	return nil
}
func (f *fakeSaleRepo) Get(ctx context.Context, id int) (*model.Sale, error) {
	for _, s := range f.sales {
		if s.SaleID == id {
			return s, nil
		}
	}
	return nil, sql.ErrNoRows
}
func (f *fakeSaleRepo) Delete(ctx context.Context, id int) error { return nil }
func (f *fakeSaleRepo) ListByCustomer(ctx context.Context, customerID string) ([]*model.Sale, error) {
	var out []*model.Sale
	for _, s := range f.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSaleRepo) ListRefs(ctx context.Context) ([]*model.SaleRef, error) { return nil, nil }
func (f *fakeSaleRepo) ListInRange(ctx context.Context, start, end *time.Time) ([]*model.Sale, error) {
	return f.sales, nil
}
func (f *fakeSaleRepo) MaxSaleID(ctx context.Context) (int, error) { return f.maxID, nil }

type fakeCustomerRepo struct {
	customers map[string]*model.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *model.Customer) error { return nil }
func (f *fakeCustomerRepo) Get(ctx context.Context, id string) (*model.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return c, nil
}
func (f *fakeCustomerRepo) Delete(ctx context.Context, id string) error          { return nil }
func (f *fakeCustomerRepo) List(ctx context.Context) ([]*model.Customer, error)  { return nil, nil }
func (f *fakeCustomerRepo) ListRefs(ctx context.Context) ([]*model.CustomerRef, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ListIDs(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeCustomerRepo) Search(ctx context.Context, firstName, lastName string) ([]*model.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Count(ctx context.Context) (int, error) { return 0, nil }
func (f *fakeCustomerRepo) AdjustBalance(ctx context.Context, id string, delta int) (int, error) {
	c, ok := f.customers[id]
	if !ok {
		return 0, sql.ErrNoRows
	}
	c.ClassBalance += delta
	return c.ClassBalance, nil
}

type fakePackageRepo struct {
	packages map[string]*model.Package
}

func (f *fakePackageRepo) Create(ctx context.Context, p *model.Package) error { return nil }
func (f *fakePackageRepo) Get(ctx context.Context, id string) (*model.Package, error) {
	p, ok := f.packages[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}
func (f *fakePackageRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakePackageRepo) ListRefs(ctx context.Context) ([]*model.PackageRef, error) {
	return nil, nil
}
func (f *fakePackageRepo) ListIDs(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakePackageRepo) SearchByName(ctx context.Context, name string) ([]*model.Package, error) {
	return nil, nil
}

func newService(maxSaleID int, balance int, pkg *model.Package) (*Service, *fakeSaleRepo, *fakeCustomerRepo) {
	saleRepo := &fakeSaleRepo{maxID: maxSaleID}
	customerRepo := &fakeCustomerRepo{customers: map[string]*model.Customer{
		"Y001": {CustomerID: "Y001", ClassBalance: balance},
	}}
	packageRepo := &fakePackageRepo{packages: map[string]*model.Package{}}
	if pkg != nil {
		packageRepo.packages[pkg.PackageID] = pkg
	}
	return NewService(saleRepo, customerRepo, packageRepo), saleRepo, customerRepo
}

func TestCreateCreditsBalanceAndAssignsID(t *testing.T) {
	svc, saleRepo, _ := newService(7, 2, &model.Package{
		PackageID:       "P001",
		Description:     "Valid for 3 months",
		NumberOfClasses: "10",
	})

	result, err := svc.Create(context.Background(), &model.CreateSaleRequest{
		CustomerID:    "Y001",
		PackageID:     "P001",
		AmountPaid:    150,
		ModeOfPayment: model.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, result.Sale.SaleID)
	assert.Equal(t, 12, result.NewBalance)
	assert.Same(t, result.Sale, saleRepo.stored)

	// 3 months of validity from the description
	wantEnd := result.Sale.Package.StartDate.AddDate(0, 3, 0)
	assert.WithinDuration(t, wantEnd, result.Sale.Package.EndDate, time.Second)
}

func TestCreateUnlimitedPackage(t *testing.T) {
	svc, _, _ := newService(0, 0, &model.Package{
		PackageID:       "P002",
		Description:     "All you can stretch",
		NumberOfClasses: model.NumberOfClassesUnlimited,
	})

	result, err := svc.Create(context.Background(), &model.CreateSaleRequest{
		CustomerID:    "Y001",
		PackageID:     "P002",
		AmountPaid:    300,
		ModeOfPayment: model.PaymentOnline,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sale.SaleID)
	assert.Equal(t, model.UnlimitedClassCredits, result.NewBalance)

	// unparseable validity falls back to one month
	wantEnd := result.Sale.Package.StartDate.AddDate(0, 1, 0)
	assert.WithinDuration(t, wantEnd, result.Sale.Package.EndDate, time.Second)
}

func TestCreateUnknownPackage(t *testing.T) {
	svc, _, _ := newService(0, 0, nil)

	_, err := svc.Create(context.Background(), &model.CreateSaleRequest{
		CustomerID:    "Y001",
		PackageID:     "P404",
		AmountPaid:    50,
		ModeOfPayment: model.PaymentCash,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.AsAppError(err).Code)
}

func TestCreateUnknownCustomer(t *testing.T) {
	svc, _, _ := newService(0, 0, &model.Package{
		PackageID:       "P001",
		Description:     "Valid for 1 month",
		NumberOfClasses: "1",
	})

	_, err := svc.Create(context.Background(), &model.CreateSaleRequest{
		CustomerID:    "Y404",
		PackageID:     "P001",
		AmountPaid:    25,
		ModeOfPayment: model.PaymentCash,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.AsAppError(err).Code)
}

func TestValidityMonths(t *testing.T) {
	assert.Equal(t, 1, validityMonths("Valid for 1 month"))
	assert.Equal(t, 3, validityMonths("Valid for 3 months"))
	assert.Equal(t, 12, validityMonths("Annual pass. Valid for 12 months."))
	assert.Equal(t, 1, validityMonths("no validity text at all"))
	assert.Equal(t, 1, validityMonths(""))
}

func TestClassCredits(t *testing.T) {
	assert.Equal(t, 1, classCredits("1"))
	assert.Equal(t, 4, classCredits("4"))
	assert.Equal(t, 10, classCredits("10"))
	assert.Equal(t, 999, classCredits("unlimited"))
	assert.Equal(t, 0, classCredits("7"))
}
