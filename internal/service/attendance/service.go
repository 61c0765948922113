package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/sequence"
)

// statsLimit caps how many records the stats endpoint scans.
const statsLimit = 100

type Service struct {
	repo      repository.AttendanceRepository
	customers repository.CustomerRepository
	classes   repository.ClassRepository
}

func NewService(repo repository.AttendanceRepository, customers repository.CustomerRepository, classes repository.ClassRepository) *Service {
	return &Service{repo: repo, customers: customers, classes: classes}
}

// Record checks in a batch of customers into one class. Each customer is
// processed independently: an unknown customer or an empty balance is
// reported in the errors list without aborting the rest of the batch. The
// balance read and the debit are separate steps, so two concurrent batches
// can both pass the balance check; the debit itself is atomic.
func (s *Service) Record(ctx context.Context, req *model.RecordAttendanceRequest) (*model.AttendanceBatchResponse, error) {
	if _, err := s.classes.Get(ctx, req.ClassID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("class")
		}
		return nil, err
	}

	resp := &model.AttendanceBatchResponse{
		Successful:     []model.CheckInResult{},
		Errors:         []string{},
		TotalProcessed: len(req.CustomerIDs),
	}

	for _, customerID := range req.CustomerIDs {
		result, err := s.checkIn(ctx, customerID, req.ClassID)
		if err != nil {
			resp.Errors = append(resp.Errors, err.Error())
			continue
		}
		resp.Successful = append(resp.Successful, *result)
	}

	resp.Message = fmt.Sprintf("Attendance recorded for %d customers", len(resp.Successful))
	return resp, nil
}

func (s *Service) checkIn(ctx context.Context, customerID, classID string) (*model.CheckInResult, error) {
	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("Customer %s not found", customerID)
		}
		return nil, fmt.Errorf("Error processing customer %s: %v", customerID, err)
	}

	if customer.ClassBalance <= 0 {
		return nil, fmt.Errorf("Customer %s has no class balance remaining", customerID)
	}

	maxID, err := s.repo.MaxCheckinID(ctx)
	if err != nil {
		return nil, fmt.Errorf("Error processing customer %s: %v", customerID, err)
	}

	record := &model.Attendance{
		CheckinID:  sequence.NextNumeric(maxID),
		CustomerID: customerID,
		ClassID:    classID,
		Datetime:   time.Now(),
	}

	newBalance, err := s.repo.CreateWithDebit(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("Error processing customer %s: %v", customerID, err)
	}

	return &model.CheckInResult{
		CustomerID: customerID,
		CheckinID:  record.CheckinID,
		NewBalance: newBalance,
		Message:    fmt.Sprintf("Checked in successfully. New balance: %d classes.", newBalance),
	}, nil
}

func (s *Service) History(ctx context.Context, customerID string) ([]*model.Attendance, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) ClassesByInstructor(ctx context.Context, instructorID string) ([]*model.Class, error) {
	return s.classes.ListByInstructor(ctx, instructorID)
}

// Delete removes a check-in and restores the customer's credit. A customer
// deleted in the meantime just loses the refund.
func (s *Service) Delete(ctx context.Context, checkinID int) error {
	record, err := s.repo.Get(ctx, checkinID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("attendance record")
		}
		return err
	}

	if err := s.repo.Delete(ctx, checkinID); err != nil {
		return err
	}

	if _, err := s.customers.AdjustBalance(ctx, record.CustomerID, 1); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("attendance deleted but balance restore failed: %w", err)
	}
	return nil
}

// Stats summarizes the most recent check-ins, optionally narrowed to one
// class or to all classes of one instructor.
func (s *Service) Stats(ctx context.Context, classID, instructorID string) (*model.AttendanceStats, error) {
	var classIDs []string
	if classID != "" {
		classIDs = []string{classID}
	}
	if instructorID != "" {
		classes, err := s.classes.ListByInstructor(ctx, instructorID)
		if err != nil {
			return nil, err
		}
		classIDs = classIDs[:0]
		for _, c := range classes {
			classIDs = append(classIDs, c.ClassID)
		}
		if len(classIDs) == 0 {
			return &model.AttendanceStats{ByClass: map[string]int{}, RecentAttendance: []*model.Attendance{}}, nil
		}
	}

	records, err := s.repo.ListRecent(ctx, classIDs, statsLimit)
	if err != nil {
		return nil, err
	}

	stats := &model.AttendanceStats{
		TotalRecords: len(records),
		ByClass:      make(map[string]int),
	}
	for _, record := range records {
		stats.ByClass[record.ClassID]++
	}

	recent := records
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentAttendance = recent

	return stats, nil
}
