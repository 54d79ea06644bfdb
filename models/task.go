package models

import "time"

// Task status values. A task moves across the board through these columns.
const (
	StatusToDo       = "to-do"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusDone       = "done"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// TaskStatuses lists every valid task status.
var TaskStatuses = []string{StatusToDo, StatusInProgress, StatusReview, StatusDone}

// TaskPriorities lists every valid task priority.
var TaskPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Task represents a unit of work belonging to a board. Assignee, reviewer and
// creator are nullable user references that survive user deletion as NULL.
type Task struct {
	TaskID      int64
	BoardID     int64
	Title       string
	Description string
	Status      string
	Priority    string

	// AssigneeID and ReviewerID are the raw foreign keys; Assignee and
	// Reviewer carry the expanded user info when loaded with a join.
	AssigneeID *int64
	ReviewerID *int64
	Assignee   *UserInfo
	Reviewer   *UserInfo

	DueDate     *Date
	CreatedByID *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CommentsCount is the aggregated number of comments, populated by
	// list queries.
	CommentsCount int
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskResponse is the full wire representation of a task, including the
// board reference.
type TaskResponse struct {
	ID            int64     `json:"id"`
	Board         int64     `json:"board"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	Assignee      *UserInfo `json:"assignee"`
	Reviewer      *UserInfo `json:"reviewer"`
	DueDate       *Date     `json:"due_date"`
	CommentsCount int       `json:"comments_count"`
}

// BoardTask is the task representation nested inside a board detail
// response. Identical to TaskResponse minus the redundant board reference.
type BoardTask struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	Assignee      *UserInfo `json:"assignee"`
	Reviewer      *UserInfo `json:"reviewer"`
	DueDate       *Date     `json:"due_date"`
	CommentsCount int       `json:"comments_count"`
}

// Response converts a Task into its full wire representation.
func (t Task) Response() TaskResponse {
	return TaskResponse{
		ID:            t.TaskID,
		Board:         t.BoardID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		Assignee:      t.Assignee,
		Reviewer:      t.Reviewer,
		DueDate:       t.DueDate,
		CommentsCount: t.CommentsCount,
	}
}

// BoardResponse converts a Task into the board-nested wire representation.
func (t Task) BoardResponse() BoardTask {
	return BoardTask{
		ID:            t.TaskID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		Assignee:      t.Assignee,
		Reviewer:      t.Reviewer,
		DueDate:       t.DueDate,
		CommentsCount: t.CommentsCount,
	}
}
