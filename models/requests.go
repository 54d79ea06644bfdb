package models

// RegistrationRequest is the payload of POST /api/registration/.
type RegistrationRequest struct {
	Fullname         string `json:"fullname"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
}

// LoginRequest is the payload of POST /api/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BoardCreateRequest is the payload of POST /api/boards/.
// Members are passed as user IDs; the requester becomes the owner.
type BoardCreateRequest struct {
	Title   string  `json:"title"`
	Members []int64 `json:"members"`
}

// BoardUpdateRequest is the payload of PATCH /api/boards/{id}/.
// Nil fields are left unchanged.
type BoardUpdateRequest struct {
	Title   *string  `json:"title"`
	Members *[]int64 `json:"members"`
}

// TaskCreateRequest is the payload of POST /api/tasks/.
// Assignee and reviewer are optional and must be members of the board.
type TaskCreateRequest struct {
	Board       int64  `json:"board"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssigneeID  *int64 `json:"assignee_id"`
	ReviewerID  *int64 `json:"reviewer_id"`
	DueDate     *Date  `json:"due_date"`
}

// TaskUpdateRequest is the payload of PATCH /api/tasks/{id}/.
// Absent fields are left unchanged. Assignee, reviewer and due date accept
// an explicit null to clear the stored value, so those use [Optional]
// instead of a plain pointer. The board of a task cannot change.
type TaskUpdateRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *string         `json:"status,omitempty"`
	Priority    *string         `json:"priority,omitempty"`
	AssigneeID  Optional[int64] `json:"assignee_id,omitzero"`
	ReviewerID  Optional[int64] `json:"reviewer_id,omitzero"`
	DueDate     Optional[Date]  `json:"due_date,omitzero"`
}

// CommentCreateRequest is the payload of POST /api/tasks/{id}/comments/.
type CommentCreateRequest struct {
	Content string `json:"content"`
}
