package fakesmith

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Version is reported to MCP hosts during initialization.
const Version = "0.1.0"

// Tool names exposed over the MCP boundary.
const (
	ToolCustomData = "generateCustomData"
	ToolPerson     = "generatePerson"
	ToolCompany    = "generateCompany"
)

// FieldSpec is a user-declared request for one named, typed synthetic value.
// Immutable once decoded from a request.
type FieldSpec struct {
	Name    string         `json:"name" jsonschema:"minLength=1,description=Field name; unique within the request"`
	Type    string         `json:"type" jsonschema:"minLength=1,description=Semantic type tag such as firstName or email or number or uuid"`
	Options map[string]any `json:"options,omitempty" jsonschema:"description=Generator-specific options such as min/max/precision/format/past/future"`
}

// CustomRequest is the argument shape of generateCustomData.
type CustomRequest struct {
	Locale string      `json:"locale,omitempty" jsonschema:"default=en,description=Locale selector; currently every locale resolves to the English data source"`
	Fields []FieldSpec `json:"fields" jsonschema:"description=Ordered field specifications"`
}

// PersonRequest is the argument shape of generatePerson.
type PersonRequest struct {
	Locale string   `json:"locale,omitempty" jsonschema:"default=en,description=Locale selector; currently every locale resolves to the English data source"`
	Fields []string `json:"fields" jsonschema:"description=Person field tags: name/email/phone/birthdate/jobTitle/address"`
}

// CompanyRequest is the argument shape of generateCompany.
type CompanyRequest struct {
	Locale string   `json:"locale,omitempty" jsonschema:"default=en,description=Locale selector; currently every locale resolves to the English data source"`
	Fields []string `json:"fields" jsonschema:"description=Company field tags: name/catchPhrase/bs/website/address"`
}

// Person field tags. A closed set: anything else degrades to null per field.
const (
	PersonName      = "name"
	PersonEmail     = "email"
	PersonPhone     = "phone"
	PersonBirthdate = "birthdate"
	PersonJobTitle  = "jobTitle"
	PersonAddress   = "address"
)

// Company field tags.
const (
	CompanyName        = "name"
	CompanyCatchPhrase = "catchPhrase"
	CompanyBS          = "bs"
	CompanyWebsite     = "website"
	CompanyAddress     = "address"
)

// PersonFields and CompanyFields enumerate the fixed-shape tags in their
// canonical order.
var (
	PersonFields  = []string{PersonName, PersonEmail, PersonPhone, PersonBirthdate, PersonJobTitle, PersonAddress}
	CompanyFields = []string{CompanyName, CompanyCatchPhrase, CompanyBS, CompanyWebsite, CompanyAddress}
)

// Record is an ordered mapping from field name to generated value. Values
// are strings, numbers, booleans, nested *Record (composite fields like
// address), or nil for fields whose generation failed. Insertion order is
// preserved through JSON serialization.
type Record struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{m: orderedmap.New[string, any]()}
}

// Set adds or replaces the value under name, keeping first-insertion order.
func (r *Record) Set(name string, v any) {
	r.m.Set(name, v)
}

// Get returns the value under name and whether it exists. A present field
// with a nil value (failed generation) returns (nil, true).
func (r *Record) Get(name string) (any, bool) {
	return r.m.Get(name)
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return r.m.Len()
}

// Keys returns field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.m.Len())
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON serializes the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.m)
}

// Indent serializes the record as a 2-space-indented JSON object, the
// success payload format of the tool interface.
func (r *Record) Indent() ([]byte, error) {
	return json.MarshalIndent(r.m, "", "  ")
}
