package validation

import (
	"regexp"

	"github.com/goliatone/go-empform/pkg/model"
)

const (
	MessageName             = "Name must be at least 4 characters long and only contain letters and spaces."
	MessageEmail            = "Email must be a valid email address."
	MessageEmployeeID       = "Employee ID must be exactly 6 digits."
	MessageJoiningDateEmpty = "Joining Date is required."
	MessageJoiningDateParse = "Joining Date must be a valid date."
	MessageJoiningDateAhead = "Joining Date cannot be in the future."
)

// whitespace is the body of a character class matching the same code points
// as ECMAScript's \s. RE2's \s only covers ASCII whitespace.
const whitespace = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

const (
	namePattern       = `^[A-Za-z` + whitespace + `]+$`
	emailPattern      = `^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`
	employeeIDPattern = `^\d{6}$`

	nameMinLength    = 4
	employeeIDLength = 6

	// DateLayout is the layout produced by HTML date inputs.
	DateLayout = "2006-01-02"
)

var (
	nameExpr       = regexp.MustCompile(namePattern)
	emailExpr      = regexp.MustCompile(emailPattern)
	employeeIDExpr = regexp.MustCompile(employeeIDPattern)
)

// Rule describes the declarative part of a field's constraint. Rules that
// depend on the current date (joiningDate) only report their format.
type Rule struct {
	Field     model.Field
	Pattern   string
	MinLength int
	MaxLength int
	Format    string
	Message   string
}

// Rules returns the constraints in field order.
func Rules() []Rule {
	return []Rule{
		{
			Field:     model.FieldName,
			Pattern:   namePattern,
			MinLength: nameMinLength,
			Message:   MessageName,
		},
		{
			Field:   model.FieldEmail,
			Pattern: emailPattern,
			Format:  "email",
			Message: MessageEmail,
		},
		{
			Field:     model.FieldEmployeeID,
			Pattern:   employeeIDPattern,
			MinLength: employeeIDLength,
			MaxLength: employeeIDLength,
			Message:   MessageEmployeeID,
		},
		{
			Field:     model.FieldJoiningDate,
			MinLength: 1,
			Format:    "date",
			Message:   MessageJoiningDateAhead,
		},
	}
}

// RuleFor returns the rule for field.
func RuleFor(field model.Field) (Rule, bool) {
	for _, rule := range Rules() {
		if rule.Field == field {
			return rule, true
		}
	}
	return Rule{}, false
}
