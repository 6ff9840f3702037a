package domain

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	UserEmail   string     `json:"userEmail"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Date        string     `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// UserStats is the per-user task aggregate.
type UserStats struct {
	UserID     string    `json:"userId"`
	Total      int       `json:"total"`
	Pending    int       `json:"pending"`
	InProgress int       `json:"inProgress"`
	Completed  int       `json:"completed"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TeamStats sums UserStats across every user.
type TeamStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	InProgress     int `json:"inProgress"`
	Completed      int `json:"completed"`
	ActiveProjects int `json:"activeProjects"` // estimate, two members per project
	TeamMembers    int `json:"teamMembers"`
}
