package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullname       = errors.New("fullname is required")
	ErrInvalidEmail        = errors.New("e-mail not valid")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordsDoNotMatch = errors.New("passwords doesn't match")
	ErrEmptyTitle          = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title must not exceed 255 characters")
	ErrInvalidBoardID      = errors.New("board must be specified")
	ErrInvalidStatus       = errors.New("invalid task status")
	ErrInvalidPriority     = errors.New("invalid task priority")
	ErrEmptyContent        = errors.New("content is required")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrFullnameTooLong     = errors.New("fullname must not exceed 255 characters")
)
