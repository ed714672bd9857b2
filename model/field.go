// file: model/field.go

package model

// FieldKind identifies the acceptance rule applied to a field value.
type FieldKind int

const (
	KindChar FieldKind = iota
	KindEmail
	KindPhone
	KindDate
	KindBirthDay
	KindArguments
	KindClientIDs
	KindGender
)

var kindNames = map[FieldKind]string{
	KindChar:      "CharField",
	KindEmail:     "EmailField",
	KindPhone:     "PhoneField",
	KindDate:      "DateField",
	KindBirthDay:  "BirthDayField",
	KindArguments: "ArgumentsField",
	KindClientIDs: "ClientIDsField",
	KindGender:    "GenderField",
}

func (k FieldKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownField"
}

// FieldSpec declares how a single named value is validated.
type FieldSpec struct {
	Required bool
	Nullable bool
	Kind     FieldKind
}

// Field is a named FieldSpec inside a Schema.
type Field struct {
	Name string
	Spec FieldSpec
}

// Gender values accepted by a KindGender field.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

var Genders = map[int]string{
	GenderUnknown: "unknown",
	GenderMale:    "male",
	GenderFemale:  "female",
}
