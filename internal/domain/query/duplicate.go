package query

import (
	"strings"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/pkg/phone"
)

// Contact is the minimal record shape duplicate checking needs; both
// customers and suppliers satisfy it via the To*Contacts helpers below.
type Contact struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// DuplicateViolation names one colliding field with a human-readable message.
type DuplicateViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DuplicateResult is advisory: callers decide whether a duplicate blocks the
// operation. When both the name and the phone collide, both violations are
// reported together rather than just the first one found.
type DuplicateResult struct {
	IsDuplicate bool                 `json:"isDuplicate"`
	Violations  []DuplicateViolation `json:"violations,omitempty"`
}

// CheckDuplicate looks for an existing record with the same normalized name
// (trimmed, case-folded) or the same normalized phone (digits only). A blank
// phone never matches anything. The record identified by excludeID is
// skipped, so editing a record does not collide with itself.
func CheckDuplicate(existing []Contact, name, rawPhone string, excludeID uuid.UUID) DuplicateResult {
	wantName := normalizeName(name)
	wantPhone := phone.Digits(rawPhone)

	var result DuplicateResult
	nameHit := false
	phoneHit := false
	for _, rec := range existing {
		if rec.ID == excludeID {
			continue
		}
		if !nameHit && wantName != "" && normalizeName(rec.Name) == wantName {
			nameHit = true
			result.Violations = append(result.Violations, DuplicateViolation{
				Field:   "name",
				Message: "A record named " + strings.TrimSpace(rec.Name) + " already exists",
			})
		}
		if !phoneHit && wantPhone != "" && phone.Digits(rec.Phone) == wantPhone {
			phoneHit = true
			result.Violations = append(result.Violations, DuplicateViolation{
				Field:   "phone",
				Message: "Phone number " + strings.TrimSpace(rec.Phone) + " is already in use",
			})
		}
		if nameHit && phoneHit {
			break
		}
	}
	result.IsDuplicate = len(result.Violations) > 0
	return result
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
