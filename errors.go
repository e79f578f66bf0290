package kwtable

import "errors"

// Package-level errors for file handling. Decode errors live in
// domain/model as *model.ParseError.
var (
	// ErrUnsupportedFormat indicates an unsupported file format
	ErrUnsupportedFormat = errors.New("kwtable: unsupported file format")

	// ErrEmptyData indicates that the data source contains no records
	ErrEmptyData = errors.New("kwtable: empty data source")
)
