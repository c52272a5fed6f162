package props

import (
	"errors"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Mapper converts a stored value into a typed value. Mappers return a
// *MappingError for input they cannot convert.
type Mapper[T any] func(raw string) (T, error)

// Bool accepts exactly "true" or "false".
func Bool(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &MappingError{Value: raw, Type: "boolean"}
}

// Int parses a decimal integer in the 32-bit range.
func Int(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &MappingError{Value: raw, Type: "integer", Err: numError(err)}
	}
	return int(n), nil
}

// Int64 parses a decimal 64-bit integer.
func Int64(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &MappingError{Value: raw, Type: "64-bit integer", Err: numError(err)}
	}
	return n, nil
}

// Float32 parses a single-precision floating point number.
func Float32(raw string) (float32, error) {
	f, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, &MappingError{Value: raw, Type: "float", Err: numError(err)}
	}
	return float32(f), nil
}

// Float64 parses a double-precision floating point number.
func Float64(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &MappingError{Value: raw, Type: "double", Err: numError(err)}
	}
	return f, nil
}

// Duration parses a duration such as "1h30m".
func Duration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &MappingError{Value: raw, Type: "duration"}
	}
	return d, nil
}

// Enum returns a Mapper that accepts one of labels. With ignoreCase the
// comparison is case-insensitive and the matching label is returned in its
// declared form.
func Enum[T ~string](labels []T, ignoreCase bool) Mapper[T] {
	return func(raw string) (T, error) {
		for _, l := range labels {
			if string(l) == raw || (ignoreCase && strings.EqualFold(string(l), raw)) {
				return l, nil
			}
		}
		names := make([]string, len(labels))
		for i, l := range labels {
			names[i] = string(l)
		}
		return "", &MappingError{Value: raw, Type: "one of [" + strings.Join(names, ", ") + "]"}
	}
}

var errInvalidPath = errors.New("invalid path syntax")

// Path validates and cleans a filesystem path.
func Path(raw string) (string, error) {
	if raw == "" || strings.ContainsRune(raw, 0) {
		return "", &MappingError{Value: raw, Type: "path", Err: errInvalidPath}
	}
	if runtime.GOOS == "windows" {
		// The drive colon is the only place ':' is allowed.
		rest := strings.TrimPrefix(raw, filepath.VolumeName(raw))
		if strings.ContainsAny(rest, `<>:"|?*`) {
			return "", &MappingError{Value: raw, Type: "path", Err: errInvalidPath}
		}
	}
	return filepath.Clean(raw), nil
}

// numError drops the strconv wrapper, which repeats the input.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
