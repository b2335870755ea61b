package parser

import "errors"

var (
	// ErrNoParserMatched means no registered parser claimed the document.
	// A common outcome, not an internal fault: the user may simply have
	// uploaded the wrong file.
	ErrNoParserMatched = errors.New("no registered parser matched the document")

	// ErrEmptyParseResult means a parser claimed the document but extracted
	// nothing: either an unusual document variant or a parser defect.
	ErrEmptyParseResult = errors.New("parser matched but extracted no data")

	// ErrInputTooLarge guards regex scanning cost on pathological inputs.
	ErrInputTooLarge = errors.New("document text exceeds maximum input size")
)
