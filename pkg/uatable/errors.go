package uatable

import "errors"

var (
	// ErrMalformedRow is returned for rows that are not [agent, category, mode] string triples.
	ErrMalformedRow = errors.New("malformed acceptance table row")

	// ErrUnknownMode is returned for case modes other than "s" and "i".
	ErrUnknownMode = errors.New("unknown case mode")

	// ErrUnsupportedFormat is returned for table formats other than JSON and YAML.
	ErrUnsupportedFormat = errors.New("unsupported table format")

	// ErrEmptyTable is returned when a table holds no rows.
	ErrEmptyTable = errors.New("acceptance table has no rows")

	// ErrDecodeFailed is returned when the table document cannot be decoded.
	ErrDecodeFailed = errors.New("failed to decode acceptance table")
)
