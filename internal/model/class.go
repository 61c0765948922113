package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Class types
const (
	ClassTypeGeneral = "General"
	ClassTypeSpecial = "Special"
)

// DefaultPayRate is applied when a class is added without one.
const DefaultPayRate = 45

// ScheduleSlot describes one weekly recurrence of a class: a weekday name,
// a 24-hour "HH:MM" start time and a duration in minutes.
type ScheduleSlot struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// ScheduleList stores the weekly slots as a jsonb column.
type ScheduleList []ScheduleSlot

func (s ScheduleList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ScheduleList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported schedule column type %T", src)
	}
}

type Class struct {
	ClassID      string       `json:"classId" db:"class_id"`
	ClassName    string       `json:"className" db:"class_name"`
	InstructorID string       `json:"instructorId" db:"instructor_id"`
	ClassType    string       `json:"classType" db:"class_type"`
	Description  string       `json:"description" db:"description"`
	Daytime      ScheduleList `json:"daytime" db:"daytime"`
	PayRate      float64      `json:"payRate" db:"pay_rate"`
}

type CreateClassRequest struct {
	ClassName    string         `json:"className" binding:"required"`
	InstructorID string         `json:"instructorId" binding:"required"`
	ClassType    string         `json:"classType" binding:"required,oneof=General Special"`
	Description  string         `json:"description"`
	Daytime      []ScheduleSlot `json:"daytime" binding:"required,min=1"`
	PayRate      float64        `json:"payRate"`
}

// ConflictResult is the outcome of a schedule conflict check.
type ConflictResult struct {
	HasConflict   bool   `json:"hasConflict"`
	ConflictClass string `json:"conflictClass,omitempty"`
	ConflictTime  string `json:"conflictTime,omitempty"`
	Message       string `json:"message,omitempty"`
}
