package scn

import "github.com/daedaluz/scn/internal/scnerr"

// ErrorKind enumerates the closed set of ways a scan can fail. See
// internal/scnerr for the canonical definition; it is re-exported here so
// every internal/* package can construct and compare errors without
// importing this root package back.
type ErrorKind = scnerr.ErrorKind

const (
	EndOfRange           = scnerr.EndOfRange
	InvalidFormatString  = scnerr.InvalidFormatString
	InvalidScannedValue  = scnerr.InvalidScannedValue
	ValueOutOfRange      = scnerr.ValueOutOfRange
	InvalidEncoding      = scnerr.InvalidEncoding
	BadSource            = scnerr.BadSource
)

// Error is the scan engine's error type, re-exported from internal/scnerr.
type Error = scnerr.Error
