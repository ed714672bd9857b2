// file: validation/validator.go

package validation

import (
	"fmt"
	"scoring-api/model"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Record holds the cleaned values of a request that passed validation.
// Fields whose value was empty and allowed to be are absent.
type Record map[string]any

// Has reports whether the named field carried a non-empty value.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Validator cleans raw requests against schemas. It keeps no per-call state
// and is safe for concurrent use once all kinds are registered.
type Validator struct {
	predicates map[model.FieldKind]Predicate
	now        func() time.Time
}

// NewValidator returns a Validator with the built-in field kinds. A nil
// clock means time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{predicates: defaultPredicates(), now: now}
}

// RegisterKind installs or replaces the predicate for kind. It must be
// called before the Validator is shared between goroutines.
func (v *Validator) RegisterKind(kind model.FieldKind, p Predicate) {
	v.predicates[kind] = p
}

// Clean validates a single value. It returns (nil, nil) for an empty value
// that its FieldSpec allows, skipping the kind check.
func (v *Validator) Clean(name string, spec model.FieldSpec, value any) (any, error) {
	if IsEmpty(value) {
		if spec.Required && !spec.Nullable {
			return nil, fail(name, "%s is required and must not be empty", spec.Kind)
		}
		return nil, nil
	}

	predicate, ok := v.predicates[spec.Kind]
	if !ok {
		return nil, fail(name, "no rule registered for %s", spec.Kind)
	}

	cleaned, err := predicate(value, v.now())
	if err != nil {
		return nil, &ValidationFailure{Field: name, Message: err.Error()}
	}
	return cleaned, nil
}

// Validate walks the schema in declaration order and stops at the first
// failing field. Keys of raw that the schema does not declare are ignored.
func (v *Validator) Validate(schema model.Schema, raw map[string]any) (Record, error) {
	record := make(Record, len(schema.Fields))
	for _, f := range schema.Fields {
		cleaned, err := v.Clean(f.Name, f.Spec, raw[f.Name])
		if err != nil {
			return nil, err
		}
		if cleaned != nil {
			record[f.Name] = cleaned
		}
	}

	if len(schema.Pairs) > 0 && !hasPair(record, schema.Pairs) {
		return nil, fail(pairsField, "%s needs at least one of the pairs %s", schema.Name, formatPairs(schema.Pairs))
	}

	return record, nil
}

// pairsField is reported as the failing field of the pair rule, since
// method schemas are validated from the envelope's arguments.
const pairsField = "arguments"

func hasPair(record Record, pairs [][2]string) bool {
	for _, p := range pairs {
		if record.Has(p[0]) && record.Has(p[1]) {
			return true
		}
	}
	return false
}

func formatPairs(pairs [][2]string) string {
	out := ""
	for i, p := range pairs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("(%s, %s)", p[0], p[1])
	}
	return out
}

// Decode copies a record into a typed request struct tagged with
// `mapstructure`.
func Decode(record Record, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(record)); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}
