package validators

import (
	"context"
	"net/mail"
	"slices"

	"github.com/StephEngl/KanMind/models"
)

// Field names accepted by [RequestValidator.Validate] for scoped validation.
const (
	FieldFullname = "fullname"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldStatus   = "status"
	FieldPriority = "priority"
	FieldContent  = "content"
	FieldBoard    = "board"
)

const maxTitleLength = 255

// RequestValidator validates every inbound API request payload. It is the
// single [Validator] implementation the services share.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.BoardCreateRequest:
		return v.validateBoardCreate(ctx, value, fields...)
	case *models.BoardCreateRequest:
		return v.validateBoardCreate(ctx, *value, fields...)

	case models.BoardUpdateRequest:
		return v.validateBoardUpdate(ctx, value, fields...)
	case *models.BoardUpdateRequest:
		return v.validateBoardUpdate(ctx, *value, fields...)

	case models.TaskCreateRequest:
		return v.validateTaskCreate(ctx, value, fields...)
	case *models.TaskCreateRequest:
		return v.validateTaskCreate(ctx, *value, fields...)

	case models.TaskUpdateRequest:
		return v.validateTaskUpdate(ctx, value, fields...)
	case *models.TaskUpdateRequest:
		return v.validateTaskUpdate(ctx, *value, fields...)

	case models.CommentCreateRequest:
		return v.validateCommentCreate(ctx, value, fields...)
	case *models.CommentCreateRequest:
		return v.validateCommentCreate(ctx, *value, fields...)

	case string:
		// A bare string is validated as an email address; used by the
		// email-check endpoint.
		return validateEmail(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegistration(_ context.Context, req models.RegistrationRequest, _ ...string) error {
	if req.Fullname == "" {
		return ErrEmptyFullname
	}
	if len(req.Fullname) > maxTitleLength {
		return ErrFullnameTooLong
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	if req.Password != req.RepeatedPassword {
		return ErrPasswordsDoNotMatch
	}

	return nil
}

func (v *RequestValidator) validateLogin(_ context.Context, req models.LoginRequest, _ ...string) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

func (v *RequestValidator) validateBoardCreate(_ context.Context, req models.BoardCreateRequest, _ ...string) error {
	return validateTitle(req.Title)
}

func (v *RequestValidator) validateBoardUpdate(_ context.Context, req models.BoardUpdateRequest, _ ...string) error {
	if req.Title == nil && req.Members == nil {
		return ErrNoFieldsToUpdate
	}
	if req.Title != nil {
		return validateTitle(*req.Title)
	}

	return nil
}

func (v *RequestValidator) validateTaskCreate(_ context.Context, req models.TaskCreateRequest, _ ...string) error {
	if req.Board <= 0 {
		return ErrInvalidBoardID
	}
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if !slices.Contains(models.TaskStatuses, req.Status) {
		return ErrInvalidStatus
	}
	if !slices.Contains(models.TaskPriorities, req.Priority) {
		return ErrInvalidPriority
	}

	return nil
}

func (v *RequestValidator) validateTaskUpdate(_ context.Context, req models.TaskUpdateRequest, _ ...string) error {
	if req.Title == nil && req.Description == nil && req.Status == nil &&
		req.Priority == nil && !req.AssigneeID.Set && !req.ReviewerID.Set &&
		!req.DueDate.Set {
		return ErrNoFieldsToUpdate
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Status != nil && !slices.Contains(models.TaskStatuses, *req.Status) {
		return ErrInvalidStatus
	}
	if req.Priority != nil && !slices.Contains(models.TaskPriorities, *req.Priority) {
		return ErrInvalidPriority
	}

	return nil
}

func (v *RequestValidator) validateCommentCreate(_ context.Context, req models.CommentCreateRequest, _ ...string) error {
	if req.Content == "" {
		return ErrEmptyContent
	}

	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}

	// net/mail accepts "Name <addr>" forms; require the bare address.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}
