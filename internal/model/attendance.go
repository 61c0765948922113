package model

import "time"

// Attendance is one check-in of a customer into a class. Creating a record
// consumes one class credit; deleting it restores the credit.
type Attendance struct {
	CheckinID  int       `json:"checkinId" db:"checkin_id"`
	CustomerID string    `json:"customerId" db:"customer_id"`
	ClassID    string    `json:"classId" db:"class_id"`
	Datetime   time.Time `json:"datetime" db:"datetime"`
}

type RecordAttendanceRequest struct {
	ClassID     string   `json:"classId" binding:"required"`
	CustomerIDs []string `json:"customerIds" binding:"required,min=1"`
}

// CheckInResult reports one successful check-in within a batch.
type CheckInResult struct {
	CustomerID string `json:"customerId"`
	CheckinID  int    `json:"checkinId"`
	NewBalance int    `json:"newBalance"`
	Message    string `json:"message"`
}

// AttendanceBatchResponse enumerates per-customer outcomes; a batch is never
// aborted by a single customer's failure.
type AttendanceBatchResponse struct {
	Message        string          `json:"message"`
	Successful     []CheckInResult `json:"successful"`
	Errors         []string        `json:"errors"`
	TotalProcessed int             `json:"totalProcessed"`
}

// AttendanceStats summarizes recent attendance grouped by class.
type AttendanceStats struct {
	TotalRecords     int            `json:"totalRecords"`
	ByClass          map[string]int `json:"byClass"`
	RecentAttendance []*Attendance  `json:"recentAttendance"`
}
