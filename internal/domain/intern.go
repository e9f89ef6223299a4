package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format of internship dates.
const DateLayout = "2006-01-02"

// InternStatus is the lifecycle state of an intern record.
type InternStatus string

const (
	InternStatusActive    InternStatus = "Active"
	InternStatusCompleted InternStatus = "Completed"
	InternStatusRevoked   InternStatus = "Revoked"
)

func (s InternStatus) String() string { return string(s) }

func (s InternStatus) IsValid() bool {
	switch s {
	case InternStatusActive, InternStatusCompleted, InternStatusRevoked:
		return true
	}
	return false
}

// ParseInternStatus converts a wire string to an InternStatus.
// An empty string yields InternStatusActive.
func ParseInternStatus(s string) (InternStatus, error) {
	if s == "" {
		return InternStatusActive, nil
	}
	st := InternStatus(s)
	if !st.IsValid() {
		return "", NewValidationError("status", fmt.Sprintf("invalid status %q", s))
	}
	return st, nil
}

// Intern is an issued internship record with its generated codes.
type Intern struct {
	ID               uuid.UUID
	FullName         string
	Email            string
	Role             string
	StartDate        time.Time
	EndDate          time.Time
	CertificateID    string
	VerificationCode string
	Status           InternStatus
	CreatedAt        time.Time
}

// IsRevoked reports whether the certificate was revoked.
func (i *Intern) IsRevoked() bool {
	return i.Status == InternStatusRevoked
}

// Codes returns the two lookup codes of the record.
func (i *Intern) Codes() []string {
	return []string{i.CertificateID, i.VerificationCode}
}

// InternUpdate overwrites the editable fields of an intern record.
type InternUpdate struct {
	FullName  string
	Email     string
	Role      string
	StartDate time.Time
	EndDate   time.Time
}

// InternFilter narrows a directory listing.
type InternFilter struct {
	// Search is a case-insensitive substring matched against name, email and role.
	Search string
	// Status limits the listing to one status. nil means all.
	Status *InternStatus
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
