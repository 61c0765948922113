package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/yogahom/studio-api/internal/repository"
)

type customerRepository struct {
	BaseRepository
}

type instructorRepository struct {
	BaseRepository
}

type classRepository struct {
	BaseRepository
}

type packageRepository struct {
	BaseRepository
}

type saleRepository struct {
	BaseRepository
}

type attendanceRepository struct {
	BaseRepository
}

type userRepository struct {
	BaseRepository
}

func NewCustomerRepository(db *sqlx.DB) repository.CustomerRepository {
	return &customerRepository{NewBaseRepository(db)}
}

func NewInstructorRepository(db *sqlx.DB) repository.InstructorRepository {
	return &instructorRepository{NewBaseRepository(db)}
}

func NewClassRepository(db *sqlx.DB) repository.ClassRepository {
	return &classRepository{NewBaseRepository(db)}
}

func NewPackageRepository(db *sqlx.DB) repository.PackageRepository {
	return &packageRepository{NewBaseRepository(db)}
}

func NewSaleRepository(db *sqlx.DB) repository.SaleRepository {
	return &saleRepository{NewBaseRepository(db)}
}

func NewAttendanceRepository(db *sqlx.DB) repository.AttendanceRepository {
	return &attendanceRepository{NewBaseRepository(db)}
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{NewBaseRepository(db)}
}
