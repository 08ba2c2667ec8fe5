package models

// Field names the service queries on. The source table carries many more
// columns; everything outside this set is passed through to responses
// verbatim.
const (
	FieldApplicant = "Applicant"
	FieldStatus    = "Status"
	FieldAddress   = "Address"
	FieldLatitude  = "Latitude"
	FieldLongitude = "Longitude"
)

// Row is one permit record from the source dataset. The dataset has an open
// column set, so a row is a field-name to value map rather than a fixed
// struct: text columns hold strings, coordinate columns hold float64 values,
// and a nil value means the source had no usable number for that field.
// Rows encode to JSON as plain objects, with absent numerics emitted as null.
type Row map[string]any

// Text returns the string value of a field, or the empty string when the
// field is missing or not text.
func (r Row) Text(key string) string {
	s, _ := r[key].(string)
	return s
}

// Coord returns the float value of a field and whether the field holds one.
func (r Row) Coord(key string) (float64, bool) {
	f, ok := r[key].(float64)
	return f, ok
}

func (r Row) Applicant() string {
	return r.Text(FieldApplicant)
}

func (r Row) Status() string {
	return r.Text(FieldStatus)
}

func (r Row) Address() string {
	return r.Text(FieldAddress)
}

func (r Row) Latitude() (float64, bool) {
	return r.Coord(FieldLatitude)
}

func (r Row) Longitude() (float64, bool) {
	return r.Coord(FieldLongitude)
}
