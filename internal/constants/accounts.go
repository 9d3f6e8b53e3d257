package constants

import "github.com/shopspring/decimal"

const (
	DefaultMaxAttempts    = 3
	DefaultHistoryLimit   = 10
	DefaultHistoryDisplay = 5
	DefaultCurrency       = "USD"
	DefaultBcryptCost     = 10
)

const (
	MaxNameLen    = 100
	DisplayPlaces = 2
)

// MaxAmount caps a single typed amount at the largest value that still
// fits in int64 cents.
var MaxAmount = decimal.New(9223372036854775, 0)

const (
	ReportingDetailed = "detailed"
	ReportingGeneric  = "generic"
)

const (
	// Date Layout
	TimestampFormat = "2006-01-02 15:04:05"
)
