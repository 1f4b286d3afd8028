package convert

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"time"
)

// Built-in converter names.
const (
	TypeString   = "string"
	TypeInt      = "int"
	TypeInt64    = "int64"
	TypeUint     = "uint"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeDuration = "duration"
	TypeURL      = "url"
	TypePath     = "path"
	TypeFile     = "file"
	TypeDir      = "dir"
)

// builtins is the fixed converter set every new registry starts with.
// Path converters normalize only; this package does no I/O, so existence
// checks belong to the handler, not the matcher.
var builtins = map[string]Func{
	TypeString: func(raw string) (any, error) {
		return raw, nil
	},
	TypeInt: func(raw string) (any, error) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return v, nil
	},
	TypeInt64: func(raw string) (any, error) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a 64-bit integer", raw)
		}
		return v, nil
	},
	TypeUint: func(raw string) (any, error) {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an unsigned integer", raw)
		}
		return v, nil
	},
	TypeFloat: func(raw string) (any, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return v, nil
	},
	TypeBool: func(raw string) (any, error) {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", raw)
		}
		return v, nil
	},
	TypeDuration: func(raw string) (any, error) {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a duration", raw)
		}
		return v, nil
	},
	TypeURL: func(raw string) (any, error) {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a URL: %v", raw, err)
		}
		if u.Scheme == "" {
			return nil, fmt.Errorf("%q is not an absolute URL", raw)
		}
		return u, nil
	},
	TypePath: cleanPath,
	TypeFile: cleanPath,
	TypeDir:  cleanPath,
}

func cleanPath(raw string) (any, error) {
	if raw == "" {
		return nil, fmt.Errorf("path must not be empty")
	}
	return filepath.Clean(raw), nil
}
