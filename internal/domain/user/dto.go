package user

import (
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
)

// CreateUserRequest is used by the create-user command.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: validator.MsgRequired,
		})
	} else if len(r.Username) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "Ensure this field has no more than 150 characters.",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: validator.MsgRequired,
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}
