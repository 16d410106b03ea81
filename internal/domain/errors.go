package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidStatus       = errors.New("invalid invoice status")
	ErrEmptyQuestion       = errors.New("question is required")
	ErrEmptyQuery          = errors.New("sql query is required")
	ErrUnsafeQuery         = errors.New("only SELECT statements are allowed")
	ErrSQLGenUnavailable   = errors.New("sql generation service unavailable")
	ErrUnknownExportFormat = errors.New("unknown export format")
)
