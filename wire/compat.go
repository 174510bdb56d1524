package wire

import (
	"os"
)

// UnknownFieldsKey is the reserved result key under which skipped trailing
// fields are surfaced when CaptureUnknownFields is set.
const UnknownFieldsKey = "__unknown"

// Config controls optional decode behaviors. Defaults preserve the strict
// baseline: unknown enum numbers fail, unknown trailing fields are discarded.
type Config struct {
	// AllowUnknownEnumNumberDecode: when true, decoding enums from wire will
	// accept numbers not present in the enum definition and surface them as
	// int32 instead of failing.
	AllowUnknownEnumNumberDecode bool

	// CaptureUnknownFields: when true, decoded structs include a reserved
	// UnknownFieldsKey entry holding the trailing fields the schema did not
	// claim, as []RawField, instead of discarding them after the skip.
	CaptureUnknownFields bool
}

// configFromEnv builds the default Config, honoring environment overrides so
// behavior can be flipped without a code change.
func configFromEnv() Config {
	return Config{
		AllowUnknownEnumNumberDecode: envBool("THRIFTLITE_ALLOW_UNKNOWN_ENUM"),
		CaptureUnknownFields:         envBool("THRIFTLITE_CAPTURE_UNKNOWN_FIELDS"),
	}
}

func envBool(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	}
	return false
}
