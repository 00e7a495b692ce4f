package fakesmith

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Engine resolves field type tags against the generator catalog and
// assembles records with per-field failure isolation. Build one with
// NewEngine; the catalog is immutable afterwards.
type Engine struct {
	catalog map[string]GeneratorFunc
	source  *Source
	logger  *slog.Logger
	custom  *Extractor[CustomRequest]
	person  *Extractor[PersonRequest]
	company *Extractor[CompanyRequest]
}

// NewEngine creates an Engine with the given options. It fails when the
// catalog does not cover every tag in AllTags or when an argument-shape
// schema cannot be built, so both defects surface at startup.
func NewEngine(opts ...Option) (*Engine, error) {
	o := engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = NewSource(o.seed)
	}
	catalog := newCatalog(o.source)
	applyMiddlewares(catalog, o.middlewares)

	custom, err := NewExtractor[CustomRequest]()
	if err != nil {
		return nil, fmt.Errorf("custom request schema: %w", err)
	}
	person, err := NewExtractor[PersonRequest]()
	if err != nil {
		return nil, fmt.Errorf("person request schema: %w", err)
	}
	company, err := NewExtractor[CompanyRequest]()
	if err != nil {
		return nil, fmt.Errorf("company request schema: %w", err)
	}

	e := &Engine{
		catalog: catalog,
		source:  o.source,
		logger:  o.logger,
		custom:  custom,
		person:  person,
		company: company,
	}
	if err := e.verifyCatalog(); err != nil {
		return nil, err
	}
	return e, nil
}

// verifyCatalog checks the registration table against the enumerated tag
// vocabulary. Turns "unsupported type" for a cataloged tag into a startup
// failure instead of a per-request surprise.
func (e *Engine) verifyCatalog() error {
	var missing []string
	for _, tag := range AllTags {
		if _, ok := e.catalog[tag]; !ok {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("generator catalog incomplete, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Tags returns the supported type tags, sorted.
func (e *Engine) Tags() []string {
	tags := make([]string, 0, len(e.catalog))
	for tag := range e.catalog {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Dispatch resolves spec.Type and invokes the matching generator with the
// field's options. An unrecognized tag returns UnsupportedTypeError; a
// panicking generator is recovered and returned as an error. Callers that
// want field-level isolation use GenerateFields instead.
func (e *Engine) Dispatch(spec FieldSpec) (v any, err error) {
	gen, ok := e.catalog[spec.Type]
	if !ok {
		return nil, &UnsupportedTypeError{Tag: spec.Type}
	}
	defer func() {
		if p := recover(); p != nil {
			v = nil
			err = &panicError{p: p}
		}
	}()
	return gen(GenOptions(spec.Options)), nil
}

// GenerateFields produces exactly one record entry per spec, in input
// order. A field whose generation fails is logged as a warning and set to
// null; it never aborts the remaining fields or the request.
func (e *Engine) GenerateFields(specs []FieldSpec) *Record {
	rec := NewRecord()
	for _, spec := range specs {
		v, err := e.Dispatch(spec)
		if err != nil {
			e.logger.Warn("field generation failed", "field", spec.Name, "type", spec.Type, "error", err)
			rec.Set(spec.Name, nil)
			continue
		}
		rec.Set(spec.Name, v)
	}
	return rec
}
