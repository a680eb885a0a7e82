package models

import (
	"time"

	"github.com/google/uuid"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID           uuid.UUID    `json:"id" db:"id" example:"3958dc9e-712f-4377-85e9-fec4b6a6442a"`
	Name         string       `json:"name" db:"name" example:"Forklift Safety"`
	CourseNumber int          `json:"courseNumber" db:"course_number" example:"1042"`
	StartDate    time.Time    `json:"startDate" db:"start_date" example:"2024-09-02T00:00:00Z"`
	EndDate      time.Time    `json:"endDate" db:"end_date" example:"2024-12-20T00:00:00Z"`
	MaxHours     int          `json:"maxHours" db:"max_hours" example:"40"`
	Status       CourseStatus `json:"status" db:"status" example:"active"`
}

// CourseInput is a validated, typed course submission
type CourseInput struct {
	Name         string
	CourseNumber int
	StartDate    time.Time
	EndDate      time.Time
	MaxHours     int
	Status       CourseStatus
}

// CourseCounts summarises the courses table for the overview
type CourseCounts struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
