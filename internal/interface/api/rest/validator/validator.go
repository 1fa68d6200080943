package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"contact-manager-api/internal/interface/api/rest/dto/user"
)

// Brazilian numbers: +55, two-digit area code, optional mobile 9, eight digits.
var brPhoneRe = regexp.MustCompile(`^\+55\d{2}9?\d{8}$`)

type (
	Violation struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	Violations []Violation

	rule struct {
		field string
		check func(string) string
	}
)

// rules is the record schema as a declarative (field, check) list. It is
// walked in order and every violation is collected, one per field.
var rules = []rule{
	{"name", lengthBetween("name", 2, 255)},
	{"email", checkEmail},
	{"phone", checkPhone},
	{"position", lengthBetween("position", 2, 255)},
	{"birthDate", checkBirthDate},
	{"message", lengthBetween("message", 10, 1000)},
}

// ValidateCreateUser checks a create payload: every field is required.
func ValidateCreateUser(r user.CreateRequest) Violations {
	return walkRules(map[string]*string{
		"name":      &r.Name,
		"email":     &r.Email,
		"phone":     &r.Phone,
		"position":  &r.Position,
		"birthDate": &r.BirthDate,
		"message":   &r.Message,
	}, true)
}

// ValidateUpdateUser checks an update payload: only supplied fields are
// validated, absent ones are skipped entirely.
func ValidateUpdateUser(r user.UpdateRequest) Violations {
	return walkRules(map[string]*string{
		"name":      r.Name,
		"email":     r.Email,
		"phone":     r.Phone,
		"position":  r.Position,
		"birthDate": r.BirthDate,
		"message":   r.Message,
	}, false)
}

func walkRules(fields map[string]*string, required bool) Violations {
	var errs Violations

	for _, rl := range rules {
		v := fields[rl.field]
		if v == nil {
			continue
		}

		value := strings.TrimSpace(*v)
		if value == "" && required {
			errs = append(errs, Violation{rl.field, rl.field + " is required"})
			continue
		}
		if msg := rl.check(value); msg != "" {
			errs = append(errs, Violation{rl.field, msg})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func lengthBetween(field string, min, max int) func(string) string {
	return func(s string) string {
		if l := utf8.RuneCountInString(s); l < min || l > max {
			return fmt.Sprintf("%s length must be %d–%d characters", field, min, max)
		}
		return ""
	}
}

func checkEmail(s string) string {
	addr, err := mail.ParseAddress(strings.ToLower(s))
	if err != nil {
		return "email must be valid"
	}
	// net/mail accepts dotless domains, the API does not
	at := strings.LastIndex(addr.Address, "@")
	if !strings.Contains(addr.Address[at+1:], ".") {
		return "email must be valid"
	}
	return ""
}

func checkPhone(s string) string {
	if !brPhoneRe.MatchString(s) {
		return "phone must be a valid Brazilian number (e.g., +5511987654321)"
	}
	return ""
}

func checkBirthDate(s string) string {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "birthDate must be a valid date (YYYY-MM-DD)"
	}
	if d.After(time.Now().UTC()) {
		return "birthDate cannot be in the future"
	}
	return ""
}

// ParseID parses a path id; anything that is not a positive integer is
// rejected before the service is involved.
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("user_id must be a positive integer")
	}
	return id, nil
}
