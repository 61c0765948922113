package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
)

type Service struct {
	sales       repository.SaleRepository
	customers   repository.CustomerRepository
	instructors repository.InstructorRepository
	classes     repository.ClassRepository
	packages    repository.PackageRepository
	attendance  repository.AttendanceRepository
}

func NewService(
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	instructors repository.InstructorRepository,
	classes repository.ClassRepository,
	packages repository.PackageRepository,
	attendance repository.AttendanceRepository,
) *Service {
	return &Service{
		sales:       sales,
		customers:   customers,
		instructors: instructors,
		classes:     classes,
		packages:    packages,
		attendance:  attendance,
	}
}

// PackageSales groups sales in the requested window by package. The customer
// list under each package keeps one entry per sale, so repeat buyers show up
// repeatedly. Dates are inclusive day strings in YYYY-MM-DD form.
func (s *Service) PackageSales(ctx context.Context, startDate, endDate string) (*model.PackageSalesReport, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	sales, err := s.sales.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byPackage := make(map[string]*model.PackageSalesEntry)
	var order []string
	report := &model.PackageSalesReport{
		Period:   model.ReportPeriod{StartDate: startDate, EndDate: endDate},
		Packages: []*model.PackageSalesEntry{},
	}

	for _, sale := range sales {
		entry, ok := byPackage[sale.Package.PackageID]
		if !ok {
			entry = &model.PackageSalesEntry{
				PackageID:   sale.Package.PackageID,
				PackageName: s.packageName(ctx, sale.Package.PackageID),
				Customers:   []string{},
			}
			byPackage[sale.Package.PackageID] = entry
			order = append(order, sale.Package.PackageID)
		}
		entry.TotalSales++
		entry.TotalRevenue += sale.Package.AmountPaid
		entry.Customers = append(entry.Customers, s.customerName(ctx, sale.CustomerID))

		report.TotalSales++
		report.TotalRevenue += sale.Package.AmountPaid
	}

	for _, id := range order {
		report.Packages = append(report.Packages, byPackage[id])
	}
	return report, nil
}

// InstructorPerformance lists each instructor with their classes and the
// all-time check-in count across those classes. The month and year filters
// are echoed in the period but do not narrow the counts, matching how the
// report has always behaved.
func (s *Service) InstructorPerformance(ctx context.Context, month, year string) (*model.InstructorPerformanceReport, error) {
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.InstructorPerformanceReport{
		Instructors: []*model.InstructorPerformanceEntry{},
	}
	report.Period.Month = month
	report.Period.Year = year

	for _, instructor := range instructors {
		classes, err := s.classes.ListByInstructor(ctx, instructor.InstructorID)
		if err != nil {
			return nil, err
		}

		entry := &model.InstructorPerformanceEntry{
			InstructorID:   instructor.InstructorID,
			InstructorName: fmt.Sprintf("%s %s", instructor.FirstName, instructor.LastName),
			TotalClasses:   len(classes),
			Classes:        []model.InstructorClassRef{},
		}

		var classIDs []string
		for _, class := range classes {
			classIDs = append(classIDs, class.ClassID)
			entry.Classes = append(entry.Classes, model.InstructorClassRef{
				ClassID:   class.ClassID,
				ClassName: class.ClassName,
				PayRate:   class.PayRate,
			})
		}

		if len(classIDs) > 0 {
			checkIns, err := s.attendance.CountByClasses(ctx, classIDs)
			if err != nil {
				return nil, err
			}
			entry.TotalCheckIns = checkIns
		}

		report.Instructors = append(report.Instructors, entry)
	}
	return report, nil
}

// CustomerPackages lists every customer with their purchase history and a
// validity status per package. Sales whose package no longer exists are
// skipped rather than shown with holes.
func (s *Service) CustomerPackages(ctx context.Context) (*model.CustomerPackagesReport, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &model.CustomerPackagesReport{Customers: []*model.CustomerPackagesEntry{}}

	for _, customer := range customers {
		sales, err := s.sales.ListByCustomer(ctx, customer.CustomerID)
		if err != nil {
			return nil, err
		}

		entry := &model.CustomerPackagesEntry{
			CustomerID:   customer.CustomerID,
			CustomerName: fmt.Sprintf("%s %s", customer.FirstName, customer.LastName),
			ClassBalance: customer.ClassBalance,
			Packages:     []model.CustomerPackageEntry{},
		}

		for _, sale := range sales {
			pkg, err := s.packages.Get(ctx, sale.Package.PackageID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					continue
				}
				return nil, err
			}

			status := packageStatus(sale.Package.StartDate, sale.Package.EndDate, now)
			if status == model.PackageStatusActive {
				report.Summary.TotalActivePackages++
			}

			entry.Packages = append(entry.Packages, model.CustomerPackageEntry{
				PackageID:    pkg.PackageID,
				PackageName:  pkg.PackageName,
				PurchaseDate: sale.PaymentDateTime,
				StartDate:    sale.Package.StartDate,
				EndDate:      sale.Package.EndDate,
				AmountPaid:   sale.Package.AmountPaid,
				Status:       status,
			})
		}

		report.Customers = append(report.Customers, entry)
	}

	report.Summary.TotalCustomers = len(customers)
	return report, nil
}

// TeacherPayments computes each instructor's payroll for one calendar month:
// check-ins per class in the month multiplied by the class pay rate.
func (s *Service) TeacherPayments(ctx context.Context, month, year int) (*model.TeacherPaymentsReport, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.Validation("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, apperrors.Validation("year is out of range")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.TeacherPaymentsReport{Instructors: []*model.TeacherPaymentEntry{}}
	report.Period.Month = month
	report.Period.Year = year
	report.Period.MonthName = start.Month().String()

	for _, instructor := range instructors {
		classes, err := s.classes.ListByInstructor(ctx, instructor.InstructorID)
		if err != nil {
			return nil, err
		}

		entry := &model.TeacherPaymentEntry{
			InstructorID:   instructor.InstructorID,
			InstructorName: fmt.Sprintf("%s %s", instructor.FirstName, instructor.LastName),
			Classes:        []model.TeacherPaymentClass{},
		}

		for _, class := range classes {
			checkIns, err := s.attendance.CountByClassBetween(ctx, class.ClassID, start, end)
			if err != nil {
				return nil, err
			}

			payment := float64(checkIns) * class.PayRate
			entry.TotalPayment += payment
			entry.Classes = append(entry.Classes, model.TeacherPaymentClass{
				ClassID:   class.ClassID,
				ClassName: class.ClassName,
				PayRate:   class.PayRate,
				CheckIns:  checkIns,
				Payment:   payment,
			})
		}

		report.TotalPayroll += entry.TotalPayment
		report.Instructors = append(report.Instructors, entry)
	}
	return report, nil
}

func (s *Service) packageName(ctx context.Context, packageID string) string {
	pkg, err := s.packages.Get(ctx, packageID)
	if err != nil {
		return "Unknown"
	}
	return pkg.PackageName
}

func (s *Service) customerName(ctx context.Context, customerID string) string {
	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return "Unknown"
	}
	return fmt.Sprintf("%s %s", customer.FirstName, customer.LastName)
}

func parseRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startDate != "" {
		t, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			return nil, nil, apperrors.Validation("startDate must be YYYY-MM-DD")
		}
		start = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			return nil, nil, apperrors.Validation("endDate must be YYYY-MM-DD")
		}
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &t
	}
	return start, end, nil
}

func packageStatus(start, end, now time.Time) string {
	switch {
	case now.Before(start):
		return model.PackageStatusFuture
	case now.After(end):
		return model.PackageStatusExpired
	default:
		return model.PackageStatusActive
	}
}
