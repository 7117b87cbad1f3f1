package auth

import "github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"

type ObtainTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *ObtainTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: validator.MsgRequired,
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: validator.MsgRequired,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	Token string `json:"token"`
}
