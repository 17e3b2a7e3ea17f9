package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)
)

// Rule checks one field's value. Check returns true when the value is
// acceptable. Rules are immutable once built.
type Rule struct {
	Field   string
	Message string
	Check   func(value string) bool
}

// Result reports the outcome of validating a single field.
type Result struct {
	Valid   bool
	Message string
}

// ValidateField applies every rule bound to field against value and
// returns the first failure, if any. Validation is pure and synchronous.
func ValidateField(rules []Rule, field, value string) Result {
	for _, r := range rules {
		if r.Field != field {
			continue
		}
		if !r.Check(value) {
			return Result{Valid: false, Message: r.Message}
		}
	}
	return Result{Valid: true}
}

// ValidateStep applies the rules against the field values and returns a
// field→message map holding the first failure per field. The step passes
// iff the map is empty. Fields without a rule are ignored.
func ValidateStep(rules []Rule, values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, r := range rules {
		if _, seen := errs[r.Field]; seen {
			continue
		}
		if !r.Check(values[r.Field]) {
			errs[r.Field] = r.Message
		}
	}
	return errs
}

// Required rejects values that are empty after trimming whitespace.
func Required(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return strings.TrimSpace(v) != ""
	}}
}

// Email rejects values that do not match a local@domain.tld shape.
// Pair with Required when the field is mandatory.
func Email(field string) Rule {
	return Rule{Field: field, Message: "Please enter a valid email address", Check: func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return true
		}
		return emailPattern.MatchString(v)
	}}
}

// Phone accepts an empty value or a 10-digit US number with optional
// parentheses, dashes, dots or spaces.
func Phone(field string) Rule {
	return Rule{Field: field, Message: "Please enter a valid phone number", Check: func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return true
		}
		return phonePattern.MatchString(v)
	}}
}

// MinLength rejects values whose trimmed length is below n.
func MinLength(field string, n int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return len(strings.TrimSpace(v)) >= n
	}}
}

// OneOf rejects values outside the allowed set.
func OneOf(field string, allowed []string, message string) Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		_, ok := set[v]
		return ok
	}}
}

// OptionalOneOf accepts an empty value or one from the allowed set.
func OptionalOneOf(field string, allowed []string, message string) Rule {
	base := OneOf(field, allowed, message)
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return true
		}
		return base.Check(v)
	}}
}

// IntRange rejects values that are not integers within [min, max].
func IntRange(field string, min, max int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return false
		}
		return n >= min && n <= max
	}}
}

// Rating is the 1..5 star rating rule used by the testimonial flow.
func Rating(field string) Rule {
	return IntRange(field, 1, 5, fmt.Sprintf("Please choose a rating between %d and %d", 1, 5))
}
