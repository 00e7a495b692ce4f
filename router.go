package fakesmith

import (
	"fmt"
	"time"
)

// Route maps a tool name and argument bag to a generated record. The three
// tool names select the request shape; anything else is a request-level
// ErrUnknownTool failure with no partial result. Field-level failures
// inside a shape degrade to null entries and do not surface here.
func (e *Engine) Route(toolName string, args map[string]any) (*Record, error) {
	switch toolName {
	case ToolCustomData:
		req, err := e.custom.Decode(args)
		if err != nil {
			return nil, err
		}
		if err := validateFieldNames(req.Fields); err != nil {
			return nil, err
		}
		_ = ResolveLocale(req.Locale)
		return e.GenerateFields(req.Fields), nil
	case ToolPerson:
		req, err := e.person.Decode(args)
		if err != nil {
			return nil, err
		}
		_ = ResolveLocale(req.Locale)
		return e.generatePerson(req.Fields), nil
	case ToolCompany:
		req, err := e.company.Decode(args)
		if err != nil {
			return nil, err
		}
		_ = ResolveLocale(req.Locale)
		return e.generateCompany(req.Fields), nil
	default:
		return nil, &RequestError{
			Reason: fmt.Sprintf("unknown tool %q", toolName),
			Err:    ErrUnknownTool,
		}
	}
}

// validateFieldNames enforces the FieldSpec contract the schema cannot:
// names unique within a request. Violations are request-level, matching
// the "one entry per input field" response invariant.
func validateFieldNames(fields []FieldSpec) error {
	seen := make(map[string]struct{}, len(fields))
	for _, fs := range fields {
		if fs.Name == "" {
			return &RequestError{Reason: "field name must not be empty", Err: ErrValidation}
		}
		if _, dup := seen[fs.Name]; dup {
			return &RequestError{
				Reason: fmt.Sprintf("duplicate field name %q", fs.Name),
				Err:    ErrValidation,
			}
		}
		seen[fs.Name] = struct{}{}
	}
	return nil
}

// generatePerson applies the fixed person recipes. These are deliberately
// hard-coded rather than routed through the catalog: the person shape
// favors structured output (nested address) where the custom path stays
// flat, and the two must not be unified. Tags are treated as a set;
// duplicates are ignored, unknown tags degrade to null.
func (e *Engine) generatePerson(fields []string) *Record {
	f := e.source.faker
	now := time.Now()
	rec := NewRecord()
	seen := make(map[string]struct{}, len(fields))
	for _, tag := range fields {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		switch tag {
		case PersonName:
			rec.Set(tag, f.Name())
		case PersonEmail:
			rec.Set(tag, f.Email())
		case PersonPhone:
			rec.Set(tag, f.PhoneFormatted())
		case PersonBirthdate:
			rec.Set(tag, f.DateRange(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)).Format("2006-01-02"))
		case PersonJobTitle:
			rec.Set(tag, f.JobTitle())
		case PersonAddress:
			rec.Set(tag, e.nestedAddress())
		default:
			e.logger.Warn("unknown person field tag", "tag", tag)
			rec.Set(tag, nil)
		}
	}
	return rec
}

// generateCompany applies the fixed company recipes; same conventions as
// generatePerson.
func (e *Engine) generateCompany(fields []string) *Record {
	f := e.source.faker
	rec := NewRecord()
	seen := make(map[string]struct{}, len(fields))
	for _, tag := range fields {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		switch tag {
		case CompanyName:
			rec.Set(tag, f.Company())
		case CompanyCatchPhrase:
			rec.Set(tag, f.Slogan())
		case CompanyBS:
			rec.Set(tag, f.BS())
		case CompanyWebsite:
			rec.Set(tag, f.URL())
		case CompanyAddress:
			rec.Set(tag, e.nestedAddress())
		default:
			e.logger.Warn("unknown company field tag", "tag", tag)
			rec.Set(tag, nil)
		}
	}
	return rec
}

// nestedAddress builds the structured address sub-record shared by the
// person and company shapes: exactly street, city, state, country,
// zipCode, all strings.
func (e *Engine) nestedAddress() *Record {
	f := e.source.faker
	addr := NewRecord()
	addr.Set("street", f.Street())
	addr.Set("city", f.City())
	addr.Set("state", f.State())
	addr.Set("country", f.Country())
	addr.Set("zipCode", f.Zip())
	return addr
}

// CustomSchema returns the advertised input schema of generateCustomData.
func (e *Engine) CustomSchema() []byte { return e.custom.Schema() }

// PersonSchema returns the advertised input schema of generatePerson.
func (e *Engine) PersonSchema() []byte { return e.person.Schema() }

// CompanySchema returns the advertised input schema of generateCompany.
func (e *Engine) CompanySchema() []byte { return e.company.Schema() }
