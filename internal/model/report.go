package model

import "time"

// Package status classifications in the customer package report.
const (
	PackageStatusActive  = "active"
	PackageStatusFuture  = "future"
	PackageStatusExpired = "expired"
)

// ReportPeriod echoes the requested date range back in the report body.
type ReportPeriod struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type PackageSalesEntry struct {
	PackageID    string   `json:"packageId"`
	PackageName  string   `json:"packageName"`
	TotalSales   int      `json:"totalSales"`
	TotalRevenue float64  `json:"totalRevenue"`
	Customers    []string `json:"customers"`
}

type PackageSalesReport struct {
	Period       ReportPeriod         `json:"period"`
	TotalSales   int                  `json:"totalSales"`
	TotalRevenue float64              `json:"totalRevenue"`
	Packages     []*PackageSalesEntry `json:"packages"`
}

type InstructorClassRef struct {
	ClassID   string  `json:"classId"`
	ClassName string  `json:"className"`
	PayRate   float64 `json:"payRate"`
}

type InstructorPerformanceEntry struct {
	InstructorID   string               `json:"instructorId"`
	InstructorName string               `json:"instructorName"`
	TotalClasses   int                  `json:"totalClasses"`
	TotalCheckIns  int                  `json:"totalCheckIns"`
	Classes        []InstructorClassRef `json:"classes"`
}

type InstructorPerformanceReport struct {
	Period struct {
		Month string `json:"month,omitempty"`
		Year  string `json:"year,omitempty"`
	} `json:"period"`
	Instructors []*InstructorPerformanceEntry `json:"instructors"`
}

type CustomerPackageEntry struct {
	PackageID    string    `json:"packageId"`
	PackageName  string    `json:"packageName"`
	PurchaseDate time.Time `json:"purchaseDate"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	AmountPaid   float64   `json:"amountPaid"`
	Status       string    `json:"status"`
}

type CustomerPackagesEntry struct {
	CustomerID   string                 `json:"customerId"`
	CustomerName string                 `json:"customerName"`
	ClassBalance int                    `json:"classBalance"`
	Packages     []CustomerPackageEntry `json:"packages"`
}

type CustomerPackagesReport struct {
	Customers []*CustomerPackagesEntry `json:"customers"`
	Summary   struct {
		TotalCustomers      int `json:"totalCustomers"`
		TotalActivePackages int `json:"totalActivePackages"`
	} `json:"summary"`
}

type TeacherPaymentClass struct {
	ClassID   string  `json:"classId"`
	ClassName string  `json:"className"`
	PayRate   float64 `json:"payRate"`
	CheckIns  int     `json:"checkIns"`
	Payment   float64 `json:"payment"`
}

type TeacherPaymentEntry struct {
	InstructorID   string                `json:"instructorId"`
	InstructorName string                `json:"instructorName"`
	TotalPayment   float64               `json:"totalPayment"`
	Classes        []TeacherPaymentClass `json:"classes"`
}

type TeacherPaymentsReport struct {
	Period struct {
		Month     int    `json:"month"`
		Year      int    `json:"year"`
		MonthName string `json:"monthName"`
	} `json:"period"`
	Instructors  []*TeacherPaymentEntry `json:"instructors"`
	TotalPayroll float64                `json:"totalPayroll"`
}

// DashboardStats feeds the landing page counters. MonthlyRevenue is a
// 2-decimal string, matching what the UI renders directly.
type DashboardStats struct {
	TotalInstructors int    `json:"totalInstructors"`
	TotalClasses     int    `json:"totalClasses"`
	TotalCustomers   int    `json:"totalCustomers"`
	MonthlyRevenue   string `json:"monthlyRevenue"`
}
