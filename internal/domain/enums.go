package domain

type ProjectStatus string

const (
	ProjectIntake    ProjectStatus = "intake"
	ProjectPlanned   ProjectStatus = "planned"
	ProjectScheduled ProjectStatus = "scheduled"
	ProjectArchived  ProjectStatus = "archived"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskArchived   TaskStatus = "archived"
)

// PushTarget identifies an external service schedules can be pushed to.
type PushTarget string

const (
	PushTodoist  PushTarget = "todoist"
	PushCalendar PushTarget = "calendar"
)
