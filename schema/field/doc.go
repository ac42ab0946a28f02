// Package field provides fluent builders for defining the fields of a
// staged-builder schema.
//
// Field names use snake_case; the generated builder converts them to
// PascalCase for state type components and setter names:
//
//	field.String("api_key")   // setter: APIKey, state component: HasAPIKey
//	field.Int("port")         // setter: Port,   state component: HasPort
//
// # Field Types
//
//	field.String("host")
//	field.Int("port")
//	field.Float64("ratio")
//	field.Bool("verbose")
//	field.Time("deadline")
//	field.UUID("id", uuid.UUID{})
//	field.Bytes("payload")
//	field.Other("amount", "decimal.Decimal", "github.com/shopspring/decimal")
//
// # Construction Constraints
//
// Required fields participate in the builder state machine and must be
// set before Build becomes available. Optional fields never affect the
// state; they resolve to their default when left unset:
//
//	field.String("host").Required()
//	field.Int("retries").Default(3)
//	field.Time("deadline").DefaultNow()
//
// # Value Production
//
// A setter maps its argument to the stored value in exactly one way:
// through a converter, through auto-convert, or by exact assignment.
//
//	// Named converter: setter accepts a string, stores its parsed form.
//	field.Int("port").Required().Convert("parsePort", &field.TypeInfo{Type: field.TypeString})
//
//	// Inline converter: expression over the declared parameter.
//	field.String("host").Required().ConvertExpr("s", "strings.ToLower(s)",
//		&field.TypeInfo{Type: field.TypeString})
//
//	// Auto-convert: generic setter accepting any ~string type.
//	field.String("name").Required().AutoConvert()
//
// # Setter Shape
//
//	field.String("host").Required().SetterName("Endpoint")
//	field.Int("port").Required().SetterPrefix("With")
//	field.Time("created_at").DefaultNow().SkipSetter()
//	field.String("id").Required().EntryPoint()
//
// An entry-point field replaces the zero-argument initializer: its setter
// becomes the single-argument constructor of the builder.
package field

//go:generate go run internal/gen.go
