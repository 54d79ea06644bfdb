package models

// Board represents a named workspace containing tasks. It has exactly one
// owner and any number of member users.
type Board struct {
	BoardID int64  `json:"id"`
	Title   string `json:"title"`
	OwnerID int64  `json:"owner_id"`

	// MemberIDs holds the user IDs of the board members. The owner is not
	// implicitly part of this set.
	MemberIDs []int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Board model.
func (b Board) TableName() string {
	return "boards"
}

// BoardSummary is the list/create representation of a board: aggregated
// counts instead of nested members and tasks.
type BoardSummary struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	MemberCount        int    `json:"member_count"`
	TicketCount        int    `json:"ticket_count"`
	TasksToDoCount     int    `json:"tasks_to_do_count"`
	TasksHighPrioCount int    `json:"tasks_high_prio_count"`
	OwnerID            int64  `json:"owner_id"`
}

// BoardDetail is the single-board representation with expanded members and
// nested tasks.
type BoardDetail struct {
	ID      int64       `json:"id"`
	Title   string      `json:"title"`
	OwnerID int64       `json:"owner_id"`
	Members []UserInfo  `json:"members"`
	Tasks   []BoardTask `json:"tasks"`
}

// BoardUpdated is the response shape of a board PATCH: nested owner and
// member details instead of bare IDs.
type BoardUpdated struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	OwnerData   UserInfo   `json:"owner_data"`
	MembersData []UserInfo `json:"members_data"`
}
