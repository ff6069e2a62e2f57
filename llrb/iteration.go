package llrb

import "iter"

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/api"

// All implement api.IndexReader interface. Return a sequence of every
// entry in ascending key order. Every call to the sequence starts a fresh
// walk, mutating the tree while a walk is in progress is undefined.
func (llrb *LLRB[K, V]) All() iter.Seq2[K, V] {
	llrb.assertalive("All")
	return func(yield func(K, V) bool) {
		llrb.n_ranges++
		llrb.rangehele(llrb.root, nil, nil, api.RangeCallb[K, V](yield))
	}
}

// Keys implement api.IndexReader interface. Return a sequence of keys
// within [lo, hi] in ascending order, empty sequence if lo > hi.
func (llrb *LLRB[K, V]) Keys(lo, hi K) (iter.Seq[K], error) {
	llrb.assertalive("Keys")
	if err := llrb.assertbounds("Keys", lo, hi); err != nil {
		return nil, err
	}
	seq := func(yield func(K) bool) {
		llrb.n_ranges++
		if llrb.compare(lo, hi) > 0 {
			return
		}
		llrb.rangehele(llrb.root, &lo, &hi, func(key K, _ V) bool {
			return yield(key)
		})
	}
	return seq, nil
}

// Range from lo to hi, incl can be "both", "low", "high", "none". A nil
// bound, for nilable key types, leaves that end of the range open. If
// reverse is true entries are visited in descending order. Iteration
// stops when callb returns false.
func (llrb *LLRB[K, V]) Range(
	lo, hi K, incl string, reverse bool, callb api.RangeCallb[K, V]) error {

	llrb.assertalive("Range")
	if callb == nil {
		return errors.Wrapf(api.ErrorInvalidArgument, "Range(): nil callback")
	}

	lk, hk, incl, skip, err := llrb.fixrangeargs(lo, hi, incl)
	if err != nil {
		return err
	} else if skip {
		return nil
	}

	llrb.n_ranges++
	llrb.dorange(lk, hk, incl, reverse, callb)
	return nil
}

func (llrb *LLRB[K, V]) fixrangeargs(
	lo, hi K, incl string) (lk, hk *K, _ string, skip bool, err error) {

	switch incl {
	case "both", "low", "high", "none":
	default:
		fmsg := "Range(): invalid inclusion %q"
		return nil, nil, incl, true, errors.Wrapf(api.ErrorInvalidArgument, fmsg, incl)
	}

	if !api.Isnil(lo) {
		lk = &lo
	}
	if !api.Isnil(hi) {
		hk = &hi
	}
	if lk != nil && hk != nil {
		if cmp := llrb.compare(*lk, *hk); cmp > 0 {
			return lk, hk, incl, true, nil
		} else if cmp == 0 && incl != "both" {
			return lk, hk, incl, true, nil
		}
	}
	return lk, hk, incl, false, nil
}

func (llrb *LLRB[K, V]) dorange(
	lk, hk *K, incl string, reverse bool, callb api.RangeCallb[K, V]) {

	root := llrb.root
	if reverse {
		switch incl {
		case "both":
			llrb.rvrslehe(root, lk, hk, callb)
		case "high":
			llrb.rvrsleht(root, lk, hk, callb)
		case "low":
			llrb.rvrslthe(root, lk, hk, callb)
		default:
			llrb.rvrsltht(root, lk, hk, callb)
		}
		return
	}

	switch incl {
	case "both":
		llrb.rangehele(root, lk, hk, callb)
	case "high":
		llrb.rangehtle(root, lk, hk, callb)
	case "low":
		llrb.rangehelt(root, lk, hk, callb)
	default:
		llrb.rangehtlt(root, lk, hk, callb)
	}
}
