package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Rule is a single predicate over a form value with the message reported when
// it fails.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Field is an ordered list of rules for one form field. Optional fields skip
// their rules when the value is absent.
type Field struct {
	Name     string
	Optional bool
	Rules    []Rule
}

// Schema validates form values field by field. Every field is checked; each
// failing field reports its first broken rule only.
type Schema []Field

// Validate returns nil when every rule passes, otherwise a field-keyed
// message map ready for the error envelope.
func (s Schema) Validate(values map[string]string) map[string][]string {
	var failures map[string][]string

	for _, field := range s {
		value := strings.TrimSpace(values[field.Name])
		if field.Optional && value == "" {
			continue
		}

		for _, rule := range field.Rules {
			if !rule.Check(value) {
				if failures == nil {
					failures = map[string][]string{}
				}
				failures[field.Name] = []string{rule.Message}
				break
			}
		}
	}

	return failures
}

var (
	alnumPattern      = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alnumSpacePattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
)

// attribute renders a field name the way messages spell it ("serial_number"
// becomes "serial number").
func attribute(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

func Required(name string) Rule {
	return Rule{
		Check:   func(v string) bool { return v != "" },
		Message: fmt.Sprintf("The %s field is required.", attribute(name)),
	}
}

func MinLen(name string, min int) Rule {
	return Rule{
		Check:   func(v string) bool { return utf8.RuneCountInString(v) >= min },
		Message: fmt.Sprintf("The %s field must be at least %d characters.", attribute(name), min),
	}
}

func MaxLen(name string, max int) Rule {
	return Rule{
		Check:   func(v string) bool { return utf8.RuneCountInString(v) <= max },
		Message: fmt.Sprintf("The %s field must not be greater than %d characters.", attribute(name), max),
	}
}

// Alphanumeric allows letters and digits only.
func Alphanumeric(name string) Rule {
	return Rule{
		Check:   alnumPattern.MatchString,
		Message: fmt.Sprintf("The %s field format is invalid.", attribute(name)),
	}
}

// AlphanumericSpace allows letters, digits and whitespace.
func AlphanumericSpace(name string) Rule {
	return Rule{
		Check:   alnumSpacePattern.MatchString,
		Message: fmt.Sprintf("The %s field format is invalid.", attribute(name)),
	}
}

func Email(name string) Rule {
	return Rule{
		Check: func(v string) bool {
			addr, err := mail.ParseAddress(v)
			return err == nil && addr.Address == v
		},
		Message: fmt.Sprintf("The %s field must be a valid email address.", attribute(name)),
	}
}

func Integer(name string) Rule {
	return Rule{
		Check: func(v string) bool {
			_, err := strconv.Atoi(v)
			return err == nil
		},
		Message: fmt.Sprintf("The %s field must be an integer.", attribute(name)),
	}
}

func IntMin(name string, min int) Rule {
	return Rule{
		Check: func(v string) bool {
			n, err := strconv.Atoi(v)
			return err == nil && n >= min
		},
		Message: fmt.Sprintf("The %s field must be at least %d.", attribute(name), min),
	}
}

func In(name string, allowed ...string) Rule {
	set := map[string]struct{}{}
	for _, v := range allowed {
		set[v] = struct{}{}
	}

	return Rule{
		Check: func(v string) bool {
			_, ok := set[v]
			return ok
		},
		Message: fmt.Sprintf("The selected %s is invalid.", attribute(name)),
	}
}

func UUID(name string) Rule {
	return Rule{
		Check:   func(v string) bool { return uuid.Validate(v) == nil },
		Message: fmt.Sprintf("The %s field must be a valid UUID.", attribute(name)),
	}
}
