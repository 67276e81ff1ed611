package domain

import "time"

type Milestone struct {
	ID            string
	ProjectID     string
	Title         string
	Description   string
	EstimateHours float64
	OrderIndex    int
	TargetDate    *time.Time
	CreatedAt     time.Time
}
