package contact

import (
	"net/url"
	"regexp"
	"strings"
)

// Form is one contact-form submission.
type Form struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"` // inquiry, testride, financing, general
	Message  string `json:"message"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the required fields and returns per-field translation
// keys for everything wrong, empty when the form is valid.
func (f Form) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.FullName) == "" {
		errs["full_name"] = "contact.error_name"
	}
	if !emailRe.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = "contact.error_email"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "contact.error_message"
	}

	return errs
}

// subjectKeys maps the form's subject selection to translation keys;
// anything unknown falls back to the general subject.
var subjectKeys = map[string]string{
	"inquiry":   "contact.subject_inquiry",
	"testride":  "contact.subject_testride",
	"financing": "contact.subject_financing",
	"general":   "contact.subject_general",
}

// SubjectKey returns the translation key for a subject selection.
func SubjectKey(subject string) string {
	if k, ok := subjectKeys[subject]; ok {
		return k
	}
	return subjectKeys["general"]
}

// Mailto builds the mailto URL the contact page opens. t translates keys
// in the current language (the i18n Bundle's T method fits).
func (f Form) Mailto(to string, t func(string) string) string {
	subject := t(SubjectKey(f.Subject))

	phone := strings.TrimSpace(f.Phone)
	if phone == "" {
		phone = "-"
	}

	lines := []string{
		t("contact.email_name") + ": " + strings.TrimSpace(f.FullName),
		t("contact.email_email") + ": " + strings.TrimSpace(f.Email),
		t("contact.email_phone") + ": " + phone,
		t("contact.email_subject") + ": " + subject,
		"",
		t("contact.email_message") + ":",
		strings.TrimSpace(f.Message),
	}
	body := strings.Join(lines, "\n")

	return "mailto:" + to + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// escape percent-encodes for a mailto query, with %20 for spaces rather
// than the form-encoding plus sign.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
