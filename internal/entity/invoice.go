package entity

// NotAvailableText is the rendering of an absent field in exported output.
const NotAvailableText = "N/A"

// Field carries the result of resolving one header value. Absence is an
// expected outcome, not an error, so it is modeled as an explicit variant
// instead of an empty string or a nil pointer.
type Field struct {
	Value string
	Found bool
}

// FieldOf wraps a resolved value. An empty (after trimming, done by the
// resolver) value should be wrapped with NotAvailable instead.
func FieldOf(value string) Field {
	return Field{Value: value, Found: true}
}

// NotAvailable is the sentinel for an unresolved field.
func NotAvailable() Field {
	return Field{}
}

// Or returns f when found, otherwise the fallback.
func (f Field) Or(fallback Field) Field {
	if f.Found {
		return f
	}
	return fallback
}

// String renders the field for export, substituting the N/A marker.
func (f Field) String() string {
	if !f.Found {
		return NotAvailableText
	}
	return f.Value
}

// HeaderRecord holds the per-document descriptive fields. Exactly one per
// processed document; every output row of the document repeats these values.
type HeaderRecord struct {
	Client          Field
	ExpReference    Field
	Date            Field
	SaleType        Field
	Incoterm        Field
	LoadPort        Field
	DestinationPort Field
	Currency        Field
	PaymentTerms    Field
	ExchangeRate    Field
	Observation     Field
}

// ProductLine is one row of the variable-length item table.
type ProductLine struct {
	Quantity    float64
	Description string
	UnitPrice   float64
	LineTotal   float64
}

// OutputRecord is the flattened unit appended to the export: one header
// record joined with one product line (or empty product fields when the
// document carried no detectable table).
type OutputRecord struct {
	SourceDocument string
	Header         HeaderRecord
	HasProduct     bool
	Product        ProductLine
}
