package dict

import "slices"
import "testing"

import "github.com/cockroachdb/errors"
import "github.com/stretchr/testify/require"

import "github.com/bnclabs/symtab/api"

var _ api.Index[string, string] = &Dict[string, string]{}

func TestDict(t *testing.T) {
	d := NewOrdered[string, string]("dict")
	defer d.Destroy()

	if d.Count() != 0 {
		t.Fatalf("expected an empty dict")
	} else if d.ID() != "dict" {
		t.Errorf("unexpected %v", d.ID())
	}

	// inserts
	inserts := [][2]string{
		{"key3", "value3"}, {"key1", "value1"}, {"key5", "value5"},
		{"key2", "value2"}, {"key4", "value4"},
	}
	for _, kv := range inserts {
		require.NoError(t, d.Upsert(kv[0], kv[1]))
	}
	// lookups
	if d.Has("key1") == false {
		t.Errorf("expected key %v", "key1")
	} else if value, ok := d.Get("key3"); !ok || value != "value3" {
		t.Errorf("expected %v, got %v", "value3", value)
	} else if _, ok := d.Get("missingkey"); ok {
		t.Errorf("unexpected missingkey")
	}

	if key, value, err := d.Min(); err != nil {
		t.Error(err)
	} else if key != "key1" || value != "value1" {
		t.Errorf("unexpected %v %v", key, value)
	}
	if key, value, err := d.Max(); err != nil {
		t.Error(err)
	} else if key != "key5" || value != "value5" {
		t.Errorf("unexpected %v %v", key, value)
	}

	// update
	require.NoError(t, d.Upsert("key1", "newvalue1"))
	if value, _ := d.Get("key1"); value != "newvalue1" {
		t.Errorf("expected %v, got %v", "newvalue1", value)
	} else if d.Count() != 5 {
		t.Errorf("unexpected %v", d.Count())
	}

	// delete
	if value, ok, err := d.Delete("key3"); err != nil || !ok {
		t.Errorf("unexpected %v %v", ok, err)
	} else if value != "value3" {
		t.Errorf("expected %v, got %v", "value3", value)
	} else if _, ok, _ := d.Delete("key3"); ok {
		t.Errorf("unexpected key3")
	}
	if key, _, err := d.DeleteMin(); err != nil || key != "key1" {
		t.Errorf("unexpected %v %v", key, err)
	} else if key, _, err := d.DeleteMax(); err != nil || key != "key5" {
		t.Errorf("unexpected %v %v", key, err)
	}
	keys := []string{}
	for key := range d.All() {
		keys = append(keys, key)
	}
	require.Equal(t, []string{"key2", "key4"}, keys)
}

func TestDictOrder(t *testing.T) {
	d := NewOrdered[int, int]("order")
	defer d.Destroy()

	for i := 0; i < 50; i++ {
		d.Upsert(i*2, i)
	}

	if floor, ok, _ := d.Floor(7); !ok || floor != 6 {
		t.Errorf("unexpected %v %v", floor, ok)
	} else if _, ok, _ := d.Floor(-1); ok {
		t.Errorf("unexpected floor")
	} else if ceil, ok, _ := d.Ceiling(7); !ok || ceil != 8 {
		t.Errorf("unexpected %v %v", ceil, ok)
	} else if _, ok, _ := d.Ceiling(99); ok {
		t.Errorf("unexpected ceiling")
	}

	if r := d.Rank(10); r != 5 {
		t.Errorf("expected %v, got %v", 5, r)
	} else if r := d.Rank(11); r != 6 {
		t.Errorf("expected %v, got %v", 6, r)
	} else if key, err := d.Select(5); err != nil || key != 10 {
		t.Errorf("unexpected %v %v", key, err)
	}
	_, err := d.Select(50)
	require.True(t, errors.Is(err, api.ErrorIndexOutOfRange))

	if n, err := d.RangeCount(10, 20); err != nil || n != 6 {
		t.Errorf("unexpected %v %v", n, err)
	} else if n, _ := d.RangeCount(20, 10); n != 0 {
		t.Errorf("unexpected %v", n)
	}

	seq, err := d.Keys(11, 19)
	require.NoError(t, err)
	require.Equal(t, []int{12, 14, 16, 18}, slices.Collect(seq))
}

func TestDictRange(t *testing.T) {
	d := NewOrdered[int, int]("range")
	defer d.Destroy()

	for i := 0; i < 10; i++ {
		d.Upsert(i, i)
	}
	collect := func(lo, hi int, incl string, reverse bool) []int {
		out := []int{}
		d.Range(lo, hi, incl, reverse, func(key, _ int) bool {
			out = append(out, key)
			return true
		})
		return out
	}
	require.Equal(t, []int{3, 4, 5}, collect(3, 5, "both", false))
	require.Equal(t, []int{3, 4}, collect(3, 5, "low", false))
	require.Equal(t, []int{4, 5}, collect(3, 5, "high", false))
	require.Equal(t, []int{4}, collect(3, 5, "none", false))
	require.Equal(t, []int{5, 4, 3}, collect(3, 5, "both", true))
	require.Equal(t, []int{4, 3}, collect(3, 5, "low", true))
	require.Equal(t, []int{5, 4}, collect(3, 5, "high", true))
	require.Equal(t, []int{4}, collect(3, 5, "none", true))
	require.Equal(t, []int{3}, collect(3, 3, "both", false))
	require.Equal(t, []int{}, collect(3, 3, "low", false))
	require.Equal(t, []int{}, collect(3, 3, "high", true))
	require.Equal(t, []int{}, collect(3, 3, "none", true))
}

func TestDictErrors(t *testing.T) {
	d := NewDict[*int, *int]("errors", func(a, b *int) int { return *a - *b })
	defer d.Destroy()

	one := 1
	_, _, err := d.Min()
	require.True(t, errors.Is(err, api.ErrorEmptyCollection))
	_, _, err = d.DeleteMax()
	require.True(t, errors.Is(err, api.ErrorEmptyCollection))
	_, _, err = d.Floor(&one)
	require.True(t, errors.Is(err, api.ErrorEmptyCollection))

	require.True(t, errors.Is(d.Upsert(nil, &one), api.ErrorInvalidArgument))
	require.True(t, errors.Is(d.Upsert(&one, nil), api.ErrorInvalidArgument))
	require.NoError(t, d.Upsert(&one, &one))
	require.NoError(t, d.Set(&one, nil))
	require.True(t, d.Isempty())

	d.Destroy()
	require.Panics(t, func() { d.Count(); d.Get(&one) })
}
