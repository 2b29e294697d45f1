// Package errs defines the error kinds raised by the dealer, party,
// voter, and bulletin board components of both PVSS variants.
package errs

import "fmt"

// CountMismatchError reports that a caller supplied the wrong number
// of items of some kind, e.g. too few or too many public keys.
type CountMismatchError struct {
	WantN     int
	WantLabel string
	GotN      int
	GotLabel  string
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("expected %d %s, got %d %s", e.WantN, e.WantLabel, e.GotN, e.GotLabel)
}

// CountMismatch builds a CountMismatchError.
func CountMismatch(wantN int, wantLabel string, gotN int, gotLabel string) error {
	return &CountMismatchError{wantN, wantLabel, gotN, gotLabel}
}

// InvalidParameterSetError reports that (n, t) do not form a valid
// threshold configuration, or that a party index is out of range.
type InvalidParameterSetError struct {
	N     int
	T     int
	Index int
}

func (e *InvalidParameterSetError) Error() string {
	return fmt.Sprintf("invalid parameter set n=%d t=%d index=%d", e.N, e.T, e.Index)
}

// InvalidParameterSet builds an InvalidParameterSetError.
func InvalidParameterSet(n, t, index int) error {
	return &InvalidParameterSetError{n, t, index}
}

// InvalidProofError reports that a NIZK or threshold-consistency
// check failed.
type InvalidProofError struct {
	Detail string
}

func (e *InvalidProofError) Error() string {
	return "invalid proof: " + e.Detail
}

// InvalidProof builds an InvalidProofError.
func InvalidProof(detail string) error {
	return &InvalidProofError{detail}
}

// UninitializedValueError reports that an operation needed a field
// that has not yet been set on the receiver.
type UninitializedValueError struct {
	Field string
}

func (e *UninitializedValueError) Error() string {
	return "uninitialized value: " + e.Field
}

// UninitializedValue builds an UninitializedValueError.
func UninitializedValue(field string) error {
	return &UninitializedValueError{field}
}

// PointDecompressionError reports that a compressed point encoding
// did not decode to a valid curve point.
type PointDecompressionError struct {
	Detail string
}

func (e *PointDecompressionError) Error() string {
	return "point decompression failed: " + e.Detail
}

// PointDecompression builds a PointDecompressionError.
func PointDecompression(detail string) error {
	return &PointDecompressionError{detail}
}

// TallyDecodeError reports that the brute-force small-discrete-log
// search over i=0..bound never found a match for the tally point.
type TallyDecodeError struct {
	Bound int
}

func (e *TallyDecodeError) Error() string {
	return fmt.Sprintf("tally decode failed: no count in [0, %d] matches", e.Bound)
}

// TallyDecodeFailed builds a TallyDecodeError.
func TallyDecodeFailed(bound int) error {
	return &TallyDecodeError{bound}
}
