package cliargs

import (
	"log/slog"
)

// ParserArgs configures a Parser. A nil *ParserArgs uses the defaults.
type ParserArgs struct {
	Logger *slog.Logger // OPTIONAL: debug logging of extraction and parsing
}

// Parser binds token sequences onto a single arguments container. The schema
// is extracted once by NewParser; a Parser is safe for concurrent use.
type Parser[T any] struct {
	descriptor *Descriptor[T]
	schema     *Schema[T]
	logger     *slog.Logger
}

// NewParser validates d and returns a Parser for it. Any defect in d is
// reported here, before a single token is seen.
func NewParser[T any](d *Descriptor[T], args *ParserArgs) (p *Parser[T], err error) {
	var schema *Schema[T]

	logger := slog.New(slog.DiscardHandler)
	if args != nil && args.Logger != nil {
		logger = args.Logger
	}

	schema, err = Extract(d)
	if err != nil {
		logger.Debug("Arguments container is invalid.", "error", err)
		goto end
	}
	if len(schema.ignored) > 0 {
		logger.Debug("Fields without a binding annotation are ignored.",
			"container", schema.container,
			"fields", schema.ignored,
		)
	}
	logger.Debug("Arguments schema extracted.",
		"container", schema.container,
		"keys", schema.keys,
	)
	p = &Parser[T]{
		descriptor: d,
		schema:     schema,
		logger:     logger,
	}
end:
	return p, err
}

// Schema returns the schema extracted for the parser's container
func (p *Parser[T]) Schema() *Schema[T] {
	return p.schema
}

// Parse constructs a T, binds tokens to the schema and assigns the bindings.
// Construction happens before any token is scanned so a failing factory is
// reported as a SchemaError whatever the tokens are.
func (p *Parser[T]) Parse(tokens []string) (obj T, err error) {
	var zero T
	var bt *BindingTable

	obj, err = construct(p.descriptor)
	if err != nil {
		goto end
	}
	bt, err = Bind(p.schema, tokens)
	if err != nil {
		goto end
	}
	obj, err = materialize(obj, p.schema, bt)

end:
	if err != nil {
		obj = zero
		p.logger.Debug("Arguments parsing failed.",
			"container", p.schema.container,
			"error", err,
		)
	}
	return obj, err
}

// ParseOSArgs is Parse for os.Args; the program name is stripped first.
func (p *Parser[T]) ParseOSArgs(osArgs []string) (T, error) {
	var args []string
	if len(osArgs) > 0 {
		args = osArgs[1:]
	}
	return p.Parse(args)
}

// Parse extracts the schema of d and parses tokens against it in one call.
// Use NewParser to extract once and parse many times.
func Parse[T any](d *Descriptor[T], tokens []string) (obj T, err error) {
	var p *Parser[T]

	p, err = NewParser(d, nil)
	if err != nil {
		goto end
	}
	obj, err = p.Parse(tokens)
end:
	return obj, err
}
