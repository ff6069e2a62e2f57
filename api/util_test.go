package api

import "testing"

import "github.com/cockroachdb/errors"

func TestBinarycmp(t *testing.T) {
	if x := Binarycmp([]byte("abc"), []byte("abd")); x != -1 {
		t.Errorf("expected %v, got %v", -1, x)
	} else if x = Binarycmp([]byte("abc"), []byte("abc")); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x = Binarycmp([]byte("abcd"), []byte("abc")); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	}
}

func TestIsnil(t *testing.T) {
	var bs []byte
	var ptr *int
	var m map[string]int
	var iface interface{}
	var err error

	if Isnil(bs) == false {
		t.Errorf("expected nil slice")
	} else if Isnil(ptr) == false {
		t.Errorf("expected nil pointer")
	} else if Isnil(m) == false {
		t.Errorf("expected nil map")
	} else if Isnil(iface) == false {
		t.Errorf("expected nil interface")
	} else if Isnil(err) == false {
		t.Errorf("expected nil error")
	}

	if Isnil([]byte{}) {
		t.Errorf("unexpected nil for empty slice")
	} else if Isnil(0) {
		t.Errorf("unexpected nil for int")
	} else if Isnil("") {
		t.Errorf("unexpected nil for empty string")
	} else if Isnil(interface{}(10)) {
		t.Errorf("unexpected nil for boxed int")
	}
}

func TestErrorKinds(t *testing.T) {
	err := errors.Wrapf(ErrorInvalidArgument, "Upsert(): nil key")
	if !errors.Is(err, ErrorInvalidArgument) {
		t.Errorf("expected %v, got %v", ErrorInvalidArgument, err)
	} else if errors.Is(err, ErrorEmptyCollection) {
		t.Errorf("unexpected %v", err)
	}
}
