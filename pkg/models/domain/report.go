package domain

import "time"

// Report represents a textual page summary
type Report struct {
	Title    string
	Period   TimePeriod
	Sections []ReportSection
	Rows     int
}

// TimePeriod represents the time range covered by the data
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// ReportSection represents one compared series
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
