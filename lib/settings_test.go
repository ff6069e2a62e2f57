package lib

import "testing"
import "reflect"

import "github.com/stretchr/testify/require"

func TestSettingsSection(t *testing.T) {
	setts := Settings{
		"debug.validate":   true,
		"debug.dotdump":    false,
		"maxheight.factor": 2.0,
	}
	ref := Settings{"debug.validate": true, "debug.dotdump": false}
	if section := setts.Section("debug."); !reflect.DeepEqual(ref, section) {
		t.Fatalf("expected %v, got %v", ref, section)
	}
	ref = Settings{"validate": true, "dotdump": false}
	trimmed := setts.Section("debug.").Trim("debug.")
	if !reflect.DeepEqual(ref, trimmed) {
		t.Fatalf("expected %v, got %v", ref, trimmed)
	}
	if prefixed := trimmed.AddPrefix("llrb."); !reflect.DeepEqual(
		Settings{"llrb.validate": true, "llrb.dotdump": false}, prefixed) {
		t.Fatalf("unexpected %v", prefixed)
	}
}

func TestSettingsFilter(t *testing.T) {
	setts := Settings{
		"log.level":      "info",
		"log.file":       "",
		"debug.validate": true,
	}
	ref := Settings{"log.level": "info"}
	if filtered := setts.Filter("level"); !reflect.DeepEqual(ref, filtered) {
		t.Fatalf("expected %v, got %v", ref, filtered)
	}
}

func TestSettingsMixin(t *testing.T) {
	setts1 := Settings{"debug.validate": false}
	setts2 := map[string]interface{}{"debug.validate": true}
	setts3 := Settings{"maxheight.factor": 2.0}
	setts := make(Settings).Mixin(setts1, setts2, setts3, "ignored")
	ref := Settings{"debug.validate": true, "maxheight.factor": 2.0}
	if !reflect.DeepEqual(ref, setts) {
		t.Fatalf("expected %v, got %v", ref, setts)
	}
}

func TestSettingsTyped(t *testing.T) {
	setts := Settings{
		"float64": float64(10), "float32": float32(10),
		"uint": uint(10), "uint64": uint64(10), "uint32": uint32(10),
		"uint16": uint16(10), "uint8": uint8(10),
		"int": int(10), "int64": int64(10), "int32": int32(10),
		"int16": int16(10), "int8": int8(10),
	}
	for key := range setts {
		if v := setts.Int64(key); v != 10 {
			t.Fatalf("for key %v, expected %v, got %v", key, 10, v)
		} else if u := setts.Uint64(key); u != 10 {
			t.Fatalf("for key %v, expected %v, got %v", key, 10, u)
		} else if f := setts.Float64(key); f != 10.0 {
			t.Fatalf("for key %v, expected %v, got %v", key, 10.0, f)
		}
	}

	setts = Settings{"param1": true, "param2": "value"}
	require.True(t, setts.Bool("param1"))
	require.Equal(t, "value", setts.String("param2"))
}

func TestSettingsPanic(t *testing.T) {
	setts := Settings{"param1": true, "param2": "value"}
	require.Panics(t, func() { setts.Bool("missing") })
	require.Panics(t, func() { setts.Bool("param2") })
	require.Panics(t, func() { setts.String("param1") })
	require.Panics(t, func() { setts.Int64("param2") })
}
