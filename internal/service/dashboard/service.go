package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
)

type Service struct {
	customers   repository.CustomerRepository
	instructors repository.InstructorRepository
	classes     repository.ClassRepository
	sales       repository.SaleRepository
}

func NewService(
	customers repository.CustomerRepository,
	instructors repository.InstructorRepository,
	classes repository.ClassRepository,
	sales repository.SaleRepository,
) *Service {
	return &Service{customers: customers, instructors: instructors, classes: classes, sales: sales}
}

// Stats assembles the landing page counters plus revenue for the current
// calendar month.
func (s *Service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	instructorCount, err := s.instructors.Count(ctx)
	if err != nil {
		return nil, err
	}
	classCount, err := s.classes.Count(ctx)
	if err != nil {
		return nil, err
	}
	customerCount, err := s.customers.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	sales, err := s.sales.ListInRange(ctx, &start, &end)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, sale := range sales {
		revenue += sale.Package.AmountPaid
	}

	return &model.DashboardStats{
		TotalInstructors: instructorCount,
		TotalClasses:     classCount,
		TotalCustomers:   customerCount,
		MonthlyRevenue:   fmt.Sprintf("%.2f", revenue),
	}, nil
}
