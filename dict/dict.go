// Package dict implement a dictionary of key,value pairs based on golang
// map. Primarily meant as reference for testing more useful ordered
// symbol tables.
package dict

import "cmp"
import "slices"

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/api"

type dictnode[V any] struct {
	value V
}

// Dict is a reference data structure, for validation purpose.
type Dict[K comparable, V any] struct {
	id       string
	dict     map[K]*dictnode[V]
	sortkeys []K // sorted on demand, reset by every mutation.
	compare  api.Comparator[K]
	dead     bool
}

// NewDict create a new golang map for indexing key,value, keys are
// ordered using compare.
func NewDict[K comparable, V any](id string, compare api.Comparator[K]) *Dict[K, V] {
	return &Dict[K, V]{
		id:      id,
		dict:    make(map[K]*dictnode[V]),
		compare: compare,
	}
}

// NewOrdered create a new Dict for key types supporting the builtin
// ordering operators.
func NewOrdered[K cmp.Ordered, V any](id string) *Dict[K, V] {
	return NewDict[K, V](id, cmp.Compare[K])
}

//---- api.IndexMeta{} interface.

// ID implement api.IndexMeta{} interface.
func (d *Dict[K, V]) ID() string {
	return d.id
}

// Count implement api.IndexMeta{} interface.
func (d *Dict[K, V]) Count() int64 {
	return int64(len(d.dict))
}

// Isempty implement api.IndexMeta{} interface.
func (d *Dict[K, V]) Isempty() bool {
	return len(d.dict) == 0
}

// Destroy the dictionary, further use shall panic.
func (d *Dict[K, V]) Destroy() {
	d.dead = true
	d.dict, d.sortkeys = nil, nil
}

//---- api.IndexReader{} interface.

// Get implement api.IndexReader{} interface.
func (d *Dict[K, V]) Get(key K) (value V, ok bool) {
	d.assertalive()
	if nd, ok := d.dict[key]; ok {
		return nd.value, true
	}
	return value, false
}

// Has implement api.IndexReader{} interface.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// Min implement api.IndexReader{} interface.
func (d *Dict[K, V]) Min() (key K, value V, err error) {
	d.assertalive()
	if len(d.dict) == 0 {
		return key, value, errors.Wrapf(api.ErrorEmptyCollection, "Min()")
	}
	key = d.sorted()[0]
	return key, d.dict[key].value, nil
}

// Max implement api.IndexReader{} interface.
func (d *Dict[K, V]) Max() (key K, value V, err error) {
	d.assertalive()
	if len(d.dict) == 0 {
		return key, value, errors.Wrapf(api.ErrorEmptyCollection, "Max()")
	}
	keys := d.sorted()
	key = keys[len(keys)-1]
	return key, d.dict[key].value, nil
}

// Floor implement api.IndexReader{} interface.
func (d *Dict[K, V]) Floor(key K) (floor K, ok bool, err error) {
	d.assertalive()
	if err = d.assertquery("Floor", key); err != nil {
		return floor, false, err
	}
	keys := d.sorted()
	i, found := slices.BinarySearchFunc(keys, key, d.compare)
	if found {
		return keys[i], true, nil
	} else if i == 0 {
		return floor, false, nil
	}
	return keys[i-1], true, nil
}

// Ceiling implement api.IndexReader{} interface.
func (d *Dict[K, V]) Ceiling(key K) (ceil K, ok bool, err error) {
	d.assertalive()
	if err = d.assertquery("Ceiling", key); err != nil {
		return ceil, false, err
	}
	keys := d.sorted()
	i, _ := slices.BinarySearchFunc(keys, key, d.compare)
	if i == len(keys) {
		return ceil, false, nil
	}
	return keys[i], true, nil
}

// Rank implement api.IndexReader{} interface.
func (d *Dict[K, V]) Rank(key K) int64 {
	d.assertalive()
	if api.Isnil(key) {
		return 0
	}
	i, _ := slices.BinarySearchFunc(d.sorted(), key, d.compare)
	return int64(i)
}

// Select implement api.IndexReader{} interface.
func (d *Dict[K, V]) Select(k int64) (key K, err error) {
	d.assertalive()
	if k < 0 || k >= d.Count() {
		fmsg := "Select(): %v not in [0,%v)"
		return key, errors.Wrapf(api.ErrorIndexOutOfRange, fmsg, k, d.Count())
	}
	return d.sorted()[k], nil
}

// RangeCount implement api.IndexReader{} interface.
func (d *Dict[K, V]) RangeCount(lo, hi K) (int64, error) {
	d.assertalive()
	if err := d.assertbounds("RangeCount", lo, hi); err != nil {
		return 0, err
	}
	var n int64
	d.rangeforward(&lo, &hi, "both", func(K, V) bool {
		n++
		return true
	})
	return n, nil
}

//---- api.IndexWriter{} interface.

// Upsert implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Upsert(key K, value V) error {
	d.assertalive()
	if api.Isnil(key) {
		return errors.Wrapf(api.ErrorInvalidArgument, "Upsert(): nil key")
	} else if api.Isnil(value) {
		return errors.Wrapf(api.ErrorInvalidArgument, "Upsert(): nil value")
	}
	if nd, ok := d.dict[key]; ok {
		nd.value = value
		return nil
	}
	d.dict[key] = &dictnode[V]{value: value}
	d.sortkeys = nil
	return nil
}

// Set implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Set(key K, value V) error {
	if api.Isnil(value) {
		_, _, err := d.Delete(key)
		return err
	}
	return d.Upsert(key, value)
}

// Delete implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Delete(key K) (value V, ok bool, err error) {
	d.assertalive()
	if api.Isnil(key) {
		err = errors.Wrapf(api.ErrorInvalidArgument, "Delete(): nil key")
		return value, false, err
	}
	nd, ok := d.dict[key]
	if !ok {
		return value, false, nil
	}
	delete(d.dict, key)
	d.sortkeys = nil
	return nd.value, true, nil
}

// DeleteMin implement api.IndexWriter{} interface.
func (d *Dict[K, V]) DeleteMin() (key K, value V, err error) {
	if key, _, err = d.Min(); err != nil {
		return key, value, errors.Wrapf(err, "DeleteMin()")
	}
	value, _, err = d.Delete(key)
	return key, value, err
}

// DeleteMax implement api.IndexWriter{} interface.
func (d *Dict[K, V]) DeleteMax() (key K, value V, err error) {
	if key, _, err = d.Max(); err != nil {
		return key, value, errors.Wrapf(err, "DeleteMax()")
	}
	value, _, err = d.Delete(key)
	return key, value, err
}

//---- local functions

func (d *Dict[K, V]) sorted() []K {
	if d.sortkeys != nil && len(d.sortkeys) == len(d.dict) {
		return d.sortkeys
	}
	d.sortkeys = make([]K, 0, len(d.dict))
	for key := range d.dict {
		d.sortkeys = append(d.sortkeys, key)
	}
	slices.SortFunc(d.sortkeys, d.compare)
	return d.sortkeys
}

func (d *Dict[K, V]) assertalive() {
	if d.dead {
		panic("dict: use after Destroy()")
	}
}

func (d *Dict[K, V]) assertquery(op string, key K) error {
	if len(d.dict) == 0 {
		return errors.Wrapf(api.ErrorEmptyCollection, "%v()", op)
	} else if api.Isnil(key) {
		return errors.Wrapf(api.ErrorInvalidArgument, "%v(): nil key", op)
	}
	return nil
}

func (d *Dict[K, V]) assertbounds(op string, lo, hi K) error {
	if api.Isnil(lo) {
		return errors.Wrapf(api.ErrorInvalidArgument, "%v(): nil low key", op)
	} else if api.Isnil(hi) {
		return errors.Wrapf(api.ErrorInvalidArgument, "%v(): nil high key", op)
	}
	return nil
}
