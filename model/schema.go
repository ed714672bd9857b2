// file: model/schema.go

package model

// Schema is an ordered list of field declarations describing one request shape.
type Schema struct {
	Name   string
	Fields []Field
	// Pairs lists field pairs of which at least one must be fully present
	// once every field has been validated. Empty means no such rule.
	Pairs [][2]string
}

// SchemaBuilder assembles a Schema in declaration order.
type SchemaBuilder struct {
	schema Schema
}

func NewSchema(name string) *SchemaBuilder {
	return &SchemaBuilder{schema: Schema{Name: name}}
}

func (b *SchemaBuilder) Field(name string, kind FieldKind, required, nullable bool) *SchemaBuilder {
	b.schema.Fields = append(b.schema.Fields, Field{
		Name: name,
		Spec: FieldSpec{Required: required, Nullable: nullable, Kind: kind},
	})
	return b
}

func (b *SchemaBuilder) RequireOnePair(first, second string) *SchemaBuilder {
	b.schema.Pairs = append(b.schema.Pairs, [2]string{first, second})
	return b
}

// Build returns the schema. Slices are copied so later builder calls
// cannot alter a schema that is already in use.
func (b *SchemaBuilder) Build() Schema {
	fields := make([]Field, len(b.schema.Fields))
	copy(fields, b.schema.Fields)
	var pairs [][2]string
	if len(b.schema.Pairs) > 0 {
		pairs = make([][2]string, len(b.schema.Pairs))
		copy(pairs, b.schema.Pairs)
	}
	return Schema{Name: b.schema.Name, Fields: fields, Pairs: pairs}
}

// Method names served by the API.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

var (
	EnvelopeSchema = NewSchema("MethodRequest").
		Field("account", KindChar, false, true).
		Field("login", KindChar, true, true).
		Field("token", KindChar, true, true).
		Field("arguments", KindArguments, true, true).
		Field("method", KindChar, true, false).
		Build()

	OnlineScoreSchema = NewSchema("OnlineScoreRequest").
		Field("first_name", KindChar, false, true).
		Field("last_name", KindChar, false, true).
		Field("email", KindEmail, false, true).
		Field("phone", KindPhone, false, true).
		Field("birthday", KindBirthDay, false, true).
		Field("gender", KindGender, false, true).
		RequireOnePair("phone", "email").
		RequireOnePair("first_name", "last_name").
		RequireOnePair("gender", "birthday").
		Build()

	ClientsInterestsSchema = NewSchema("ClientsInterestsRequest").
		Field("client_ids", KindClientIDs, true, false).
		Field("date", KindDate, false, true).
		Build()
)
