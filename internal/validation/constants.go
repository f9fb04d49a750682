package validation

import "errors"

// ErrSchemaValidation is returned when a document does not satisfy its schema
var ErrSchemaValidation = errors.New("schema validation failed")

// Error messages
const (
	ErrMsgReadDataFailed      = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed    = "failed to load schema %s: %w"
	ErrMsgParseDataFailed     = "failed to parse JSON data: %w"
	ErrMsgReadSchemaFailed    = "failed to read schema file: %w"
	ErrMsgParseSchemaFailed   = "failed to parse schema JSON: %w"
	ErrMsgAddResourceFailed   = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFailed = "failed to compile schema: %w"
)
