package dict

import "iter"

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/api"

// All implement api.IndexReader{} interface.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	d.assertalive()
	return func(yield func(K, V) bool) {
		d.rangeforward(nil, nil, "both", api.RangeCallb[K, V](yield))
	}
}

// Keys implement api.IndexReader{} interface.
func (d *Dict[K, V]) Keys(lo, hi K) (iter.Seq[K], error) {
	d.assertalive()
	if err := d.assertbounds("Keys", lo, hi); err != nil {
		return nil, err
	}
	seq := func(yield func(K) bool) {
		d.rangeforward(&lo, &hi, "both", func(key K, _ V) bool {
			return yield(key)
		})
	}
	return seq, nil
}

// Range from lo to hi, incl can be "both", "low", "high", "none". A nil
// bound, for nilable key types, leaves that end of the range open.
func (d *Dict[K, V]) Range(
	lo, hi K, incl string, reverse bool, callb api.RangeCallb[K, V]) error {

	d.assertalive()
	if callb == nil {
		return errors.Wrapf(api.ErrorInvalidArgument, "Range(): nil callback")
	}
	switch incl {
	case "both", "low", "high", "none":
	default:
		fmsg := "Range(): invalid inclusion %q"
		return errors.Wrapf(api.ErrorInvalidArgument, fmsg, incl)
	}

	var lk, hk *K
	if !api.Isnil(lo) {
		lk = &lo
	}
	if !api.Isnil(hi) {
		hk = &hi
	}
	if reverse {
		d.rangebackward(lk, hk, incl, callb)
		return nil
	}
	d.rangeforward(lk, hk, incl, callb)
	return nil
}

func (d *Dict[K, V]) rangeforward(lk, hk *K, incl string, callb api.RangeCallb[K, V]) {
	if lk != nil && hk != nil && d.compare(*lk, *hk) == 0 && incl != "both" {
		return
	}

	keys := d.sorted()
	start := 0
	if lk != nil {
		for ; start < len(keys); start++ {
			cmp := d.compare(keys[start], *lk)
			if cmp > 0 || (cmp == 0 && (incl == "low" || incl == "both")) {
				break
			}
		}
	}
	for ; start < len(keys); start++ {
		key := keys[start]
		if hk != nil {
			cmp := d.compare(key, *hk)
			if cmp > 0 || (cmp == 0 && (incl == "low" || incl == "none")) {
				break
			}
		}
		if callb(key, d.dict[key].value) == false {
			break
		}
	}
}

func (d *Dict[K, V]) rangebackward(lk, hk *K, incl string, callb api.RangeCallb[K, V]) {
	if lk != nil && hk != nil && d.compare(*lk, *hk) == 0 && incl != "both" {
		return
	}

	keys := d.sorted()
	start := len(keys) - 1
	if hk != nil {
		for ; start >= 0; start-- {
			cmp := d.compare(keys[start], *hk)
			if cmp < 0 || (cmp == 0 && (incl == "high" || incl == "both")) {
				break
			}
		}
	}
	for ; start >= 0; start-- {
		key := keys[start]
		if lk != nil {
			cmp := d.compare(key, *lk)
			if cmp < 0 || (cmp == 0 && (incl == "high" || incl == "none")) {
				break
			}
		}
		if callb(key, d.dict[key].value) == false {
			break
		}
	}
}
