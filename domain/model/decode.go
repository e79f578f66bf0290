package model

import (
	"math"
	"strconv"
	"strings"
)

// decodeNumber parses a single numeric cell. The raw text is trimmed and
// thousands separators (",") are stripped before parsing. When integer is
// true the cell must parse with integer semantics; otherwise it parses as
// a floating-point number. A result that is not a finite number fails
// with ErrInvalidValue.
func decodeNumber(col Column, line int, raw string, integer bool) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if integer {
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return 0, &ParseError{Line: line, Column: col, Raw: raw, Err: ErrInvalidValue}
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &ParseError{Line: line, Column: col, Raw: raw, Err: ErrInvalidValue}
	}
	return f, nil
}

// decodeOptionalNumber returns None when the raw text is empty or
// whitespace-only, otherwise delegates to decodeNumber.
func decodeOptionalNumber(col Column, line int, raw string, integer bool) (Option[float64], error) {
	if strings.TrimSpace(raw) == "" {
		return None[float64](), nil
	}
	v, err := decodeNumber(col, line, raw, integer)
	if err != nil {
		return None[float64](), err
	}
	return Some(v), nil
}

// decodeFloatList parses a comma-separated list of decimals. Empty or
// whitespace-only raw text yields an empty sequence. One invalid token
// fails the whole list with ErrInvalidListEntry; malformed entries are
// never silently dropped.
func decodeFloatList(col Column, line int, raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		f, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, &ParseError{Line: line, Column: col, Raw: part, Err: ErrInvalidListEntry}
		}
		values = append(values, f)
	}
	return values, nil
}

// decodeIntList parses a comma-separated list of integers with the same
// contract as decodeFloatList.
func decodeIntList(col Column, line int, raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Column: col, Raw: part, Err: ErrInvalidListEntry}
		}
		values = append(values, int(n))
	}
	return values, nil
}
