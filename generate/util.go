package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// timestamp renders the current time as an approximate ISO-8601 string using
// flat 365-day years and 30-day months.  The value is informational only;
// nothing downstream parses it back.
func timestamp() string {
	secs := time.Now().Unix()

	days := secs / 86400
	rem := secs % 86400
	hours := rem / 3600
	minutes := (rem % 3600) / 60
	seconds := rem % 60

	year := 1970 + days/365
	month := days%365/30 + 1
	if month > 12 {
		month = 12
	}
	day := days%365%30 + 1
	if day > 31 {
		day = 31
	}

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", year, month, day, hours, minutes, seconds)
}

// sourceHash fingerprints the compiled source with xxhash64.
func sourceHash(source string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(source))
}

// LanguageOf infers the dialect from the source file extension.  Rule files
// are the default for unrecognized extensions.
func LanguageOf(path string) string {
	switch {
	case strings.HasSuffix(path, ".bcl"):
		return "bcl"
	case strings.HasSuffix(path, ".bdl"):
		return "bdl"
	default:
		return "brl"
	}
}
