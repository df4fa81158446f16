package form_test

import (
	"testing"

	"github.com/goliatone/go-empform/pkg/form"
	"github.com/goliatone/go-empform/pkg/model"
	"github.com/goliatone/go-empform/pkg/testsupport"
	"github.com/goliatone/go-empform/pkg/validation"
)

func newStore() *form.Store {
	return form.New(form.WithValidator(testsupport.Validator()))
}

func TestNew_StartsEmpty(t *testing.T) {
	store := newStore()

	if !store.FormData().IsZero() {
		t.Fatalf("expected empty form data, got %+v", store.FormData())
	}
	if store.Errors().Len() != 0 || store.Touched().Len() != 0 {
		t.Fatalf("expected no errors or touched fields")
	}
	if store.IsFormValid() {
		t.Fatalf("empty form must not be valid")
	}
}

func TestHandleInputChange_UntouchedDefersValidation(t *testing.T) {
	store := newStore()

	store.HandleInputChange(model.FieldEmployeeID, "12")

	if got := store.FormData().EmployeeID; got != "12" {
		t.Fatalf("expected value recorded, got %q", got)
	}
	if store.Errors().Has(model.FieldEmployeeID) {
		t.Fatalf("expected no error before blur")
	}
}

func TestHandleInputChange_TouchedRevalidates(t *testing.T) {
	store := newStore()

	store.HandleInputChange(model.FieldEmployeeID, "12")
	store.HandleBlur(model.FieldEmployeeID)
	if got := store.Errors().Get(model.FieldEmployeeID); got != validation.MessageEmployeeID {
		t.Fatalf("expected error after blur, got %q", got)
	}

	store.HandleInputChange(model.FieldEmployeeID, "123456")
	if store.Errors().Has(model.FieldEmployeeID) {
		t.Fatalf("expected error cleared while typing a valid id")
	}

	store.HandleInputChange(model.FieldEmployeeID, "1234567")
	if got := store.Errors().Get(model.FieldEmployeeID); got != validation.MessageEmployeeID {
		t.Fatalf("expected error on invalid keystroke, got %q", got)
	}
}

func TestHandleInputChange_UntouchedKeepsExistingError(t *testing.T) {
	store := newStore()

	store.ValidateForm()
	store.ResetForm()
	store.HandleBlur(model.FieldName)
	before := store.Errors()

	// email was never touched after the reset; typing must not add an entry
	store.HandleInputChange(model.FieldEmail, "broken")
	testsupport.AssertEqual(t, "errors", before, store.Errors())
}

func TestHandleBlur_MatchesValidateField(t *testing.T) {
	v := testsupport.Validator()
	for _, field := range model.Fields() {
		store := newStore()
		store.HandleInputChange(field, "x")
		store.HandleBlur(field)

		if !store.Touched().Get(field) {
			t.Fatalf("%s: expected touched", field)
		}
		if got, want := store.Errors().Get(field), v.ValidateField(field, "x"); got != want {
			t.Fatalf("%s: error %q, want %q", field, got, want)
		}
	}
}

func TestHandleBlur_UnknownFieldIsPermissive(t *testing.T) {
	store := newStore()
	unknown := model.Field("department")

	store.HandleInputChange(unknown, "Finance")
	store.HandleBlur(unknown)

	if !store.Touched().Get(unknown) {
		t.Fatalf("expected unknown field to be recorded as touched")
	}
	if store.Errors().Has(unknown) {
		t.Fatalf("unknown fields must not produce errors")
	}
	if !store.FormData().IsZero() {
		t.Fatalf("unknown field must not change form data")
	}
}

func TestValidateForm_RevealsAllErrors(t *testing.T) {
	store := newStore()
	store.HandleInputChange(model.FieldName, "Alice Smith")

	if store.ValidateForm() {
		t.Fatalf("expected incomplete form to fail")
	}

	want := model.FormErrors{
		model.FieldEmail:       validation.MessageEmail,
		model.FieldEmployeeID:  validation.MessageEmployeeID,
		model.FieldJoiningDate: validation.MessageJoiningDateEmpty,
	}
	testsupport.AssertEqual(t, "errors", want, store.Errors())

	wantTouched := model.TouchedState{
		model.FieldName:        true,
		model.FieldEmail:       true,
		model.FieldEmployeeID:  true,
		model.FieldJoiningDate: true,
	}
	testsupport.AssertEqual(t, "touched", wantTouched, store.Touched())

	for field := range want {
		if store.VisibleError(field) == "" {
			t.Fatalf("%s: expected visible error after full validation", field)
		}
	}
}

func TestValidateForm_ReplacesStaleErrors(t *testing.T) {
	store := newStore()
	store.HandleBlur(model.FieldName)
	if !store.Errors().Has(model.FieldName) {
		t.Fatalf("expected name error")
	}

	store = form.New(form.WithValidator(testsupport.Validator()), form.WithInitial(testsupport.ValidFormData()))
	store.HandleInputChange(model.FieldName, "Al")
	store.HandleBlur(model.FieldName)
	store.HandleInputChange(model.FieldName, "Alice Smith")

	if !store.ValidateForm() {
		t.Fatalf("expected valid form, errors: %v", store.Errors())
	}
	if store.Errors().Len() != 0 {
		t.Fatalf("expected errors cleared, got %v", store.Errors())
	}
}

func TestResetForm(t *testing.T) {
	store := form.New(form.WithValidator(testsupport.Validator()), form.WithInitial(testsupport.ValidFormData()))
	store.HandleBlur(model.FieldEmail)
	store.ValidateForm()

	store.ResetForm()

	testsupport.AssertEqual(t, "form data", model.FormData{}, store.FormData())
	testsupport.AssertEqual(t, "errors", model.FormErrors{}, store.Errors())
	testsupport.AssertEqual(t, "touched", model.TouchedState{}, store.Touched())
}

func TestIsFormValid_IgnoresTouchedState(t *testing.T) {
	store := newStore()
	data := testsupport.ValidFormData()
	for _, field := range model.Fields() {
		store.HandleInputChange(field, data.Get(field))
	}

	if !store.IsFormValid() {
		t.Fatalf("expected valid form before any blur")
	}
	if store.Touched().Len() != 0 {
		t.Fatalf("IsFormValid must not mark fields touched")
	}

	store.HandleInputChange(model.FieldEmail, "nope")
	if store.IsFormValid() {
		t.Fatalf("expected invalid form after bad email")
	}
	if store.Errors().Has(model.FieldEmail) {
		t.Fatalf("untouched email must not report a stored error")
	}
}

func TestVisibleError_HiddenUntilTouched(t *testing.T) {
	store := newStore()
	store.ValidateForm()
	store.ResetForm()

	store.HandleInputChange(model.FieldName, "Al")
	if store.VisibleError(model.FieldName) != "" {
		t.Fatalf("expected no visible error before blur")
	}
	store.HandleBlur(model.FieldName)
	if store.VisibleError(model.FieldName) != validation.MessageName {
		t.Fatalf("expected visible name error")
	}
}

func TestEndToEnd_Name(t *testing.T) {
	store := newStore()

	store.HandleInputChange(model.FieldName, "Al")
	store.HandleBlur(model.FieldName)
	if got := store.VisibleError(model.FieldName); got != validation.MessageName {
		t.Fatalf("expected short name error, got %q", got)
	}

	store.HandleInputChange(model.FieldName, "Alice Smith")
	store.HandleBlur(model.FieldName)
	if got := store.VisibleError(model.FieldName); got != "" {
		t.Fatalf("expected no error, got %q", got)
	}
}

func TestEndToEnd_EmployeeID(t *testing.T) {
	store := newStore()

	store.HandleInputChange(model.FieldEmployeeID, "12345")
	store.HandleBlur(model.FieldEmployeeID)
	if !store.Errors().Has(model.FieldEmployeeID) {
		t.Fatalf("expected error for 5 digit id")
	}

	store.HandleInputChange(model.FieldEmployeeID, "123456")
	store.HandleBlur(model.FieldEmployeeID)
	if store.Errors().Has(model.FieldEmployeeID) {
		t.Fatalf("expected 6 digit id to pass")
	}
}

func TestEndToEnd_JoiningDate(t *testing.T) {
	store := newStore()

	store.HandleInputChange(model.FieldJoiningDate, testsupport.Date(1))
	store.HandleBlur(model.FieldJoiningDate)
	if got := store.VisibleError(model.FieldJoiningDate); got != validation.MessageJoiningDateAhead {
		t.Fatalf("expected future date error, got %q", got)
	}

	store.HandleInputChange(model.FieldJoiningDate, testsupport.Date(0))
	if got := store.VisibleError(model.FieldJoiningDate); got != "" {
		t.Fatalf("expected today to be accepted, got %q", got)
	}
}

func TestEndToEnd_SubmitAndReset(t *testing.T) {
	store := newStore()
	data := testsupport.ValidFormData()
	for _, field := range model.Fields() {
		store.HandleInputChange(field, data.Get(field))
		store.HandleBlur(field)
	}

	if !store.ValidateForm() {
		t.Fatalf("expected valid submission, errors: %v", store.Errors())
	}
	testsupport.AssertEqual(t, "submitted data", data, store.FormData())

	store.ResetForm()
	if !store.FormData().IsZero() {
		t.Fatalf("expected all fields empty after reset")
	}
}

func TestSnapshot(t *testing.T) {
	store := form.New(form.WithValidator(testsupport.Validator()), form.WithInitial(testsupport.ValidFormData()))
	store.HandleBlur(model.FieldName)

	want := form.Snapshot{
		Data:    testsupport.ValidFormData(),
		Errors:  model.FormErrors{},
		Touched: model.TouchedState{model.FieldName: true},
		Valid:   true,
	}
	testsupport.AssertEqual(t, "snapshot", want, store.Snapshot())
}

func TestStore_ZeroValueIsUsable(t *testing.T) {
	var store form.Store

	store.HandleInputChange(model.FieldEmployeeID, "12345")
	store.HandleBlur(model.FieldEmployeeID)
	if got := store.VisibleError(model.FieldEmployeeID); got != validation.MessageEmployeeID {
		t.Fatalf("expected employee id error, got %q", got)
	}

	store.HandleInputChange(model.FieldEmployeeID, "123456")
	if store.Errors().Has(model.FieldEmployeeID) {
		t.Fatalf("expected error cleared after valid input")
	}
	if store.IsFormValid() {
		t.Fatalf("incomplete form must not be valid")
	}
	if store.ValidateForm() {
		t.Fatalf("incomplete form must fail validation")
	}
	if store.Touched().Len() != len(model.Fields()) {
		t.Fatalf("expected all fields touched, got %v", store.Touched())
	}

	store.ResetForm()
	if !store.FormData().IsZero() || store.Errors().Len() != 0 {
		t.Fatalf("expected reset state")
	}
}
