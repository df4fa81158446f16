package testsupport

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-empform/pkg/model"
	"github.com/goliatone/go-empform/pkg/validation"
)

// Today is the reference date used by fixtures. Tests pin the validator clock
// to this instant so joining-date expectations never drift.
var Today = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

// FixedClock returns a clock that always reports instant.
func FixedClock(instant time.Time) func() time.Time {
	return func() time.Time { return instant }
}

// Validator returns a validator pinned to Today in UTC.
func Validator() *validation.Validator {
	return validation.New(
		validation.WithClock(FixedClock(Today)),
		validation.WithLocation(time.UTC),
	)
}

// Date formats the day offset by days from Today using the HTML date layout.
func Date(days int) string {
	return Today.AddDate(0, 0, days).Format(validation.DateLayout)
}

// ValidFormData returns a fully valid submission relative to Today.
func ValidFormData() model.FormData {
	return model.FormData{
		Name:        "Alice Smith",
		Email:       "alice@example.com",
		EmployeeID:  "123456",
		JoiningDate: Date(0),
	}
}

// AssertEqual fails the test with a cmp diff when want and got differ.
func AssertEqual(t *testing.T, label string, want, got any, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", label, diff)
	}
}
