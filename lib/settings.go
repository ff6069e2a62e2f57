package lib

import "strings"

import "github.com/cockroachdb/errors"

// Settings map of settings parameters.
type Settings map[string]interface{}

// Section will create a new settings object with parameters
// starting with `prefix`.
func (setts Settings) Section(prefix string) Settings {
	section := make(Settings)
	for key, value := range setts {
		if strings.HasPrefix(key, prefix) {
			section[key] = value
		}
	}
	return section
}

// Trim settings parameter with `prefix` string.
func (setts Settings) Trim(prefix string) Settings {
	trimmed := make(Settings)
	for key, value := range setts {
		trimmed[strings.TrimPrefix(key, prefix)] = value
	}
	return trimmed
}

// AddPrefix return a new settings object with `prefix` prepended to
// every parameter name.
func (setts Settings) AddPrefix(prefix string) Settings {
	prefixed := make(Settings)
	for key, value := range setts {
		prefixed[prefix+key] = value
	}
	return prefixed
}

// Filter settings paramters that contain `subs`.
func (setts Settings) Filter(subs string) Settings {
	subsetts := make(Settings)
	for key, value := range setts {
		if strings.Contains(key, subs) {
			subsetts[key] = value
		}
	}
	return subsetts
}

// Mixin settings to override `setts` with `settings`.
func (setts Settings) Mixin(settings ...interface{}) Settings {
	update := func(arg map[string]interface{}) {
		for key, value := range arg {
			setts[key] = value
		}
	}
	for _, arg := range settings {
		switch cnf := arg.(type) {
		case Settings:
			update(map[string]interface{}(cnf))
		case map[string]interface{}:
			update(cnf)
		}
	}
	return setts
}

// Bool return the boolean value for key.
func (setts Settings) Bool(key string) bool {
	value := setts.lookup(key)
	val, ok := value.(bool)
	if !ok {
		panicerr("settings %q not a bool: %T", key, value)
	}
	return val
}

// Float64 return the float64 value for key.
func (setts Settings) Float64(key string) float64 {
	return setts.number(key)
}

// Int64 return the int64 value for key.
func (setts Settings) Int64(key string) int64 {
	return int64(setts.number(key))
}

// Uint64 return the uint64 value for key.
func (setts Settings) Uint64(key string) uint64 {
	return uint64(setts.number(key))
}

// String return the string value for key.
func (setts Settings) String(key string) string {
	value := setts.lookup(key)
	val, ok := value.(string)
	if !ok {
		panicerr("settings %q not a string: %T", key, value)
	}
	return val
}

func (setts Settings) lookup(key string) interface{} {
	value, ok := setts[key]
	if !ok {
		panicerr("missing settings %q", key)
	}
	return value
}

// number settings can come from json decoding (float64) or from code
// (int, int64 ...), accept all of them.
func (setts Settings) number(key string) float64 {
	switch val := setts.lookup(key).(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case uint:
		return float64(val)
	case uint64:
		return float64(val)
	case uint32:
		return float64(val)
	case uint16:
		return float64(val)
	case uint8:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case int32:
		return float64(val)
	case int16:
		return float64(val)
	case int8:
		return float64(val)
	default:
		panicerr("settings %q not a number: %T", key, val)
	}
	return 0
}

func panicerr(fmsg string, args ...interface{}) {
	panic(errors.Newf(fmsg, args...))
}
