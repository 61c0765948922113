package repository

import (
	"context"
	"time"

	"github.com/yogahom/studio-api/internal/model"
)

// All repository interfaces in one file
type (
	CustomerRepository interface {
		Create(ctx context.Context, customer *model.Customer) error
		Get(ctx context.Context, customerID string) (*model.Customer, error)
		Delete(ctx context.Context, customerID string) error
		List(ctx context.Context) ([]*model.Customer, error)
		ListRefs(ctx context.Context) ([]*model.CustomerRef, error)
		ListIDs(ctx context.Context) ([]string, error)
		Search(ctx context.Context, firstName, lastName string) ([]*model.Customer, error)
		Count(ctx context.Context) (int, error)
		// AdjustBalance applies a relative balance change atomically at the
		// store and returns the resulting balance.
		AdjustBalance(ctx context.Context, customerID string, delta int) (int, error)
	}

	InstructorRepository interface {
		Create(ctx context.Context, instructor *model.Instructor) error
		Get(ctx context.Context, instructorID string) (*model.Instructor, error)
		Delete(ctx context.Context, instructorID string) error
		List(ctx context.Context) ([]*model.Instructor, error)
		ListRefs(ctx context.Context) ([]*model.InstructorRef, error)
		ListIDs(ctx context.Context) ([]string, error)
		Search(ctx context.Context, firstName, lastName string) ([]*model.Instructor, error)
		Count(ctx context.Context) (int, error)
	}

	ClassRepository interface {
		Create(ctx context.Context, class *model.Class) error
		Get(ctx context.Context, classID string) (*model.Class, error)
		Delete(ctx context.Context, classID string) error
		List(ctx context.Context) ([]*model.Class, error)
		ListByInstructor(ctx context.Context, instructorID string) ([]*model.Class, error)
		ListIDs(ctx context.Context) ([]string, error)
		Count(ctx context.Context) (int, error)
	}

	PackageRepository interface {
		Create(ctx context.Context, pkg *model.Package) error
		Get(ctx context.Context, packageID string) (*model.Package, error)
		Delete(ctx context.Context, packageID string) error
		ListRefs(ctx context.Context) ([]*model.PackageRef, error)
		ListIDs(ctx context.Context) ([]string, error)
		SearchByName(ctx context.Context, name string) ([]*model.Package, error)
	}

	SaleRepository interface {
		Create(ctx context.Context, sale *model.Sale) error
		Get(ctx context.Context, saleID int) (*model.Sale, error)
		Delete(ctx context.Context, saleID int) error
		ListByCustomer(ctx context.Context, customerID string) ([]*model.Sale, error)
		ListRefs(ctx context.Context) ([]*model.SaleRef, error)
		// ListInRange filters on payment time; nil bounds are open ends.
		ListInRange(ctx context.Context, start, end *time.Time) ([]*model.Sale, error)
		MaxSaleID(ctx context.Context) (int, error)
	}

	AttendanceRepository interface {
		// CreateWithDebit inserts the check-in and decrements the customer's
		// balance in one transaction, returning the new balance.
		CreateWithDebit(ctx context.Context, record *model.Attendance) (int, error)
		Get(ctx context.Context, checkinID int) (*model.Attendance, error)
		Delete(ctx context.Context, checkinID int) error
		ListByCustomer(ctx context.Context, customerID string) ([]*model.Attendance, error)
		ListRecent(ctx context.Context, classIDs []string, limit int) ([]*model.Attendance, error)
		CountByClasses(ctx context.Context, classIDs []string) (int, error)
		CountByClassBetween(ctx context.Context, classID string, start, end time.Time) (int, error)
		MaxCheckinID(ctx context.Context) (int, error)
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, username string) (*model.User, error)
	}
)
