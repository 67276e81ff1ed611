package domain

import "time"

// Project is an intake summary plus the clarifying questions generated for it.
// Milestones and tasks hang off a project once a plan has been generated.
type Project struct {
	ID        string
	Summary   string
	Questions []string
	Status    ProjectStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayID returns a short identifier suitable for tables and logs.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
