package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoBoardMembership is returned when a user who belongs to no board
	// at all requests the board list.
	ErrNoBoardMembership = errors.New("user is not a member or owner of any board")

	ErrNotBoardMember             = errors.New("user is not a member of this board")
	ErrNotBoardOwner              = errors.New("only the board owner may perform this action")
	ErrNotBoardOwnerOrTaskCreator = errors.New("only the board owner or the task creator may delete a task")
	ErrNotCommentAuthor           = errors.New("only the comment author may delete a comment")

	ErrAssigneeNotMember = errors.New("assignee must be a member of the board")
	ErrReviewerNotMember = errors.New("reviewer must be a member of the board")
)
