// Package certificate renders internship certificates as HTML and PDF.
package certificate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// Date layouts used on the certificate.
const (
	LongDateLayout  = "January 2, 2006"
	ShortDateLayout = "Jan 2, 2006"
)

// Width and Height are the certificate dimensions in CSS pixels.
const (
	Width  = 800
	Height = 600
)

// Data holds the intern fields printed on a certificate.
type Data struct {
	FullName         string
	Role             string
	StartDate        time.Time
	EndDate          time.Time
	CertificateID    string
	VerificationCode string
}

// DataFromIntern copies the printable fields of an intern record.
func DataFromIntern(in *domain.Intern) Data {
	return Data{
		FullName:         in.FullName,
		Role:             in.Role,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		CertificateID:    in.CertificateID,
		VerificationCode: in.VerificationCode,
	}
}

// FormatDuration renders "start to end" with the given date layout.
func FormatDuration(start, end time.Time, layout string) string {
	return fmt.Sprintf("%s to %s", start.Format(layout), end.Format(layout))
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename returns the download name for a certificate, e.g. Jane_Doe_Certificate.pdf.
func Filename(fullName string) string {
	return whitespaceRun.ReplaceAllString(fullName, "_") + "_Certificate.pdf"
}

// ShareURL returns the public verification page of a code.
func ShareURL(baseURL, verificationCode string) string {
	return strings.TrimRight(baseURL, "/") + "/intern/" + verificationCode
}

// Links builds share URLs against a fixed public base URL.
type Links struct {
	BaseURL string
}

// ShareURL returns the public verification page of a code.
func (l Links) ShareURL(verificationCode string) string {
	return ShareURL(l.BaseURL, verificationCode)
}
