package validator

import (
	"strconv"
	"strings"
	"time"
)

// NonFieldErrors is the key under which errors that do not belong to a single
// request field are reported.
const NonFieldErrors = "non_field_errors"

const dateLayout = "2006-01-02"

// Messages shared by request DTOs.
const (
	MsgRequired    = "This field is required."
	MsgInvalidDate = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgInvalidInt  = "A valid integer is required."
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.key()+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap groups messages by field. Errors without a field end up under
// NonFieldErrors.
func (v ValidationErrors) ToMap() map[string][]string {
	result := make(map[string][]string)
	for _, err := range v {
		result[err.key()] = append(result[err.key()], err.Message)
	}
	return result
}

func (e ValidationError) key() string {
	if e.Field == "" {
		return NonFieldErrors
	}
	return e.Field
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, dateStr)
	return date, err == nil
}

// ParseInt parses an optional integer query value. An empty string yields nil.
func ParseInt(s string) (*int, bool) {
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}
	return &n, true
}

// FormatDate renders a civil date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
