package query_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/query"
)

func TestCheckDuplicateName(t *testing.T) {
	existing := []query.Contact{
		{ID: uuid.New(), Name: "Alhaji Musa", Phone: "08031234567"},
	}

	// Name matching is trimmed and case-folded.
	result := query.CheckDuplicate(existing, "  ALHAJI musa ", "07000000000", uuid.Nil)
	if !result.IsDuplicate {
		t.Fatal("expected duplicate on normalized name")
	}
	if len(result.Violations) != 1 || result.Violations[0].Field != "name" {
		t.Errorf("violations = %+v, want a single name violation", result.Violations)
	}
}

func TestCheckDuplicatePhone(t *testing.T) {
	existing := []query.Contact{
		{ID: uuid.New(), Name: "Alhaji Musa", Phone: "0803-123-4567"},
	}

	// Phone matching compares digits only, so formatting differences collide.
	result := query.CheckDuplicate(existing, "Someone Else", "08031234567", uuid.Nil)
	if !result.IsDuplicate {
		t.Fatal("expected duplicate on normalized phone")
	}
	if len(result.Violations) != 1 || result.Violations[0].Field != "phone" {
		t.Errorf("violations = %+v, want a single phone violation", result.Violations)
	}
}

// When both fields collide, both violations are reported together; the
// check does not stop at the first match.
func TestCheckDuplicateBothReported(t *testing.T) {
	existing := []query.Contact{
		{ID: uuid.New(), Name: "Alhaji Musa", Phone: "08031234567"},
	}

	result := query.CheckDuplicate(existing, "alhaji musa", "0803 123 4567", uuid.Nil)
	if len(result.Violations) != 2 {
		t.Fatalf("violations = %+v, want both name and phone", result.Violations)
	}
}

func TestCheckDuplicateExcludesSelf(t *testing.T) {
	self := uuid.New()
	existing := []query.Contact{
		{ID: self, Name: "Alhaji Musa", Phone: "08031234567"},
	}

	result := query.CheckDuplicate(existing, "Alhaji Musa", "08031234567", self)
	if result.IsDuplicate {
		t.Errorf("editing a record collided with itself: %+v", result.Violations)
	}
}

func TestCheckDuplicateBlankPhoneNeverMatches(t *testing.T) {
	existing := []query.Contact{
		{ID: uuid.New(), Name: "No Phone", Phone: ""},
	}

	result := query.CheckDuplicate(existing, "Different Name", "", uuid.Nil)
	if result.IsDuplicate {
		t.Errorf("blank phones matched each other: %+v", result.Violations)
	}
}

func TestCheckDuplicateNoMatch(t *testing.T) {
	existing := []query.Contact{
		{ID: uuid.New(), Name: "Alhaji Musa", Phone: "08031234567"},
	}

	result := query.CheckDuplicate(existing, "Bintu Rice Stores", "07050001111", uuid.Nil)
	if result.IsDuplicate || len(result.Violations) != 0 {
		t.Errorf("unexpected duplicate: %+v", result.Violations)
	}
}
