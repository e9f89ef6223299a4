package intern

import (
	"regexp"
	"strings"
	"time"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// User-facing validation and conflict messages.
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidEmail      = "Invalid email format"
	MsgInvalidDate       = "Dates must use the YYYY-MM-DD format"
	MsgEndBeforeStart    = "End date must be after start date"
	MsgDuplicateEmail    = "An intern with this email already exists"
	MsgInvalidStatus     = "Status must be one of Active, Completed, Revoked"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IssueInput holds the raw form fields of a new intern.
type IssueInput struct {
	FullName  string
	Email     string
	Role      string
	StartDate string
	EndDate   string
}

// EditInput holds the overwritten fields of an existing intern.
type EditInput IssueInput

type parsedInput struct {
	fullName string
	email    string
	role     string
	start    time.Time
	end      time.Time
}

// Validate checks the input in order: presence, email format, dates.
// The first failing stage is reported.
func (i IssueInput) Validate() error {
	_, err := i.parse()
	return err
}

// Validate applies the same rules as IssueInput.Validate.
func (i EditInput) Validate() error {
	return IssueInput(i).Validate()
}

func (i IssueInput) parse() (parsedInput, error) {
	p := parsedInput{
		fullName: strings.TrimSpace(i.FullName),
		email:    strings.TrimSpace(i.Email),
		role:     strings.TrimSpace(i.Role),
	}
	startRaw := strings.TrimSpace(i.StartDate)
	endRaw := strings.TrimSpace(i.EndDate)

	var errs []domain.FieldError
	for _, f := range []struct{ name, value string }{
		{"fullName", p.fullName},
		{"email", p.email},
		{"role", p.role},
		{"startDate", startRaw},
		{"endDate", endRaw},
	} {
		if f.value == "" {
			errs = append(errs, domain.FieldError{Field: f.name, Message: MsgAllFieldsRequired})
		}
	}
	if len(errs) > 0 {
		return p, &domain.ValidationError{Errors: errs}
	}

	if !emailRe.MatchString(p.email) {
		return p, domain.NewValidationError("email", MsgInvalidEmail)
	}

	var err error
	if p.start, err = domain.ParseDate(startRaw); err != nil {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: MsgInvalidDate})
	}
	if p.end, err = domain.ParseDate(endRaw); err != nil {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: MsgInvalidDate})
	}
	if len(errs) > 0 {
		return p, &domain.ValidationError{Errors: errs}
	}

	if !p.end.After(p.start) {
		return p, domain.NewValidationError("endDate", MsgEndBeforeStart)
	}

	return p, nil
}
