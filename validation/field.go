// file: validation/field.go

package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"scoring-api/model"
	"strconv"
	"time"
)

// Predicate checks a non-empty value of one field kind and returns it in
// normalized form.
type Predicate func(value any, now time.Time) (any, error)

const dateLayout = "02.01.2006"

var emailRegexp = regexp.MustCompile(`^\S*@(.*)\.([a-z].*)$`)

func defaultPredicates() map[model.FieldKind]Predicate {
	return map[model.FieldKind]Predicate{
		model.KindChar:      cleanChar,
		model.KindEmail:     cleanEmail,
		model.KindPhone:     cleanPhone,
		model.KindDate:      cleanDate,
		model.KindBirthDay:  cleanBirthDay,
		model.KindArguments: cleanArguments,
		model.KindClientIDs: cleanClientIDs,
		model.KindGender:    cleanGender,
	}
}

// asInt accepts JSON integers only. Booleans, floats and numeric strings
// are rejected.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func cleanChar(value any, _ time.Time) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("'%v' is not string", value)
	}
	return s, nil
}

func cleanEmail(value any, now time.Time) (any, error) {
	s, err := cleanChar(value, now)
	if err != nil {
		return nil, err
	}
	if !emailRegexp.MatchString(s.(string)) {
		return nil, fmt.Errorf("'%v' is not correct e-mail", value)
	}
	return s, nil
}

func cleanPhone(value any, _ time.Time) (any, error) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	default:
		n, ok := asInt(v)
		if !ok {
			return nil, fmt.Errorf("'%v' is not phone number", value)
		}
		s = strconv.Itoa(n)
	}
	if s == "" {
		return nil, fmt.Errorf("'%v' is not phone number", value)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("'%v' is not phone number, use digits only", value)
		}
	}
	return s, nil
}

func parseDate(value any) (string, time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return "", time.Time{}, fmt.Errorf("'%v' is not date, use format 'DD.MM.YYYY'", value)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("'%v' is not date, use format 'DD.MM.YYYY'", value)
	}
	return s, t, nil
}

func cleanDate(value any, _ time.Time) (any, error) {
	s, _, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Age returns the number of whole 365-day years between birth and the
// calendar date of now.
func Age(birth, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(birth).Hours() / 24)
	return days / 365
}

func cleanBirthDay(value any, now time.Time) (any, error) {
	s, birth, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	if age := Age(birth, now); age <= 5 || age >= 100 {
		return nil, fmt.Errorf("'%v' gives age %d, must be between 5 and 100 years", value, age)
	}
	return s, nil
}

func cleanArguments(value any, _ time.Time) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("'%v' is not dictionary of arguments", value)
	}
	return m, nil
}

var errClientIDs = errors.New("is not list of integers, use format '[0, 1, 2]'")

func cleanClientIDs(value any, _ time.Time) (any, error) {
	switch v := value.(type) {
	case []int:
		return v, nil
	case []any:
		ids := make([]int, 0, len(v))
		for _, item := range v {
			id, ok := asInt(item)
			if !ok {
				return nil, fmt.Errorf("'%v' %w", value, errClientIDs)
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	return nil, fmt.Errorf("'%v' %w", value, errClientIDs)
}

func cleanGender(value any, _ time.Time) (any, error) {
	g, ok := asInt(value)
	if !ok {
		return nil, fmt.Errorf("'%v' is not gender, use one of 0, 1, 2", value)
	}
	if _, known := model.Genders[g]; !known {
		return nil, fmt.Errorf("'%v' is not gender, use one of 0, 1, 2", value)
	}
	return g, nil
}
