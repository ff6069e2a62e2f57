package llrb

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/api"
import "github.com/bnclabs/symtab/lib"

//---- api.IndexReader interface

// Get implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Get(key K) (value V, ok bool) {
	llrb.assertalive("Get")
	llrb.n_lookups++
	if api.Isnil(key) {
		return value, false
	}
	if nd := llrb.getnode(key); nd != nil {
		return nd.value, true
	}
	return value, false
}

// Has implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Has(key K) bool {
	_, ok := llrb.Get(key)
	return ok
}

// Min implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Min() (key K, value V, err error) {
	llrb.assertalive("Min")
	llrb.n_lookups++
	if llrb.root == nil {
		return key, value, errors.Wrapf(api.ErrorEmptyCollection, "Min()")
	}
	nd := llrb.root
	for nd.left != nil {
		nd = nd.left
	}
	return nd.key, nd.value, nil
}

// Max implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Max() (key K, value V, err error) {
	llrb.assertalive("Max")
	llrb.n_lookups++
	if llrb.root == nil {
		return key, value, errors.Wrapf(api.ErrorEmptyCollection, "Max()")
	}
	nd := llrb.root
	for nd.right != nil {
		nd = nd.right
	}
	return nd.key, nd.value, nil
}

// Floor implement api.IndexReader interface. Return the largest key less
// than or equal to key, ok is false if there is no such key.
func (llrb *LLRB[K, V]) Floor(key K) (floor K, ok bool, err error) {
	llrb.assertalive("Floor")
	if err = llrb.assertquery("Floor", key); err != nil {
		return floor, false, err
	}
	llrb.n_lookups++

	var best *Llrbnode[K, V]
	for nd := llrb.root; nd != nil; {
		cmp := llrb.compare(key, nd.key)
		if cmp == 0 {
			return nd.key, true, nil
		} else if cmp < 0 {
			nd = nd.left
		} else {
			best, nd = nd, nd.right
		}
	}
	if best == nil {
		return floor, false, nil
	}
	return best.key, true, nil
}

// Ceiling implement api.IndexReader interface. Return the smallest key
// greater than or equal to key, ok is false if there is no such key.
func (llrb *LLRB[K, V]) Ceiling(key K) (ceil K, ok bool, err error) {
	llrb.assertalive("Ceiling")
	if err = llrb.assertquery("Ceiling", key); err != nil {
		return ceil, false, err
	}
	llrb.n_lookups++

	var best *Llrbnode[K, V]
	for nd := llrb.root; nd != nil; {
		cmp := llrb.compare(key, nd.key)
		if cmp == 0 {
			return nd.key, true, nil
		} else if cmp > 0 {
			nd = nd.right
		} else {
			best, nd = nd, nd.left
		}
	}
	if best == nil {
		return ceil, false, nil
	}
	return best.key, true, nil
}

// Rank implement api.IndexReader interface. Return the number of keys
// strictly less than key, key need not be present in the tree.
func (llrb *LLRB[K, V]) Rank(key K) int64 {
	llrb.assertalive("Rank")
	llrb.n_lookups++
	if api.Isnil(key) {
		return 0
	}
	return llrb.rank(key)
}

// Select implement api.IndexReader interface. Return the key of rank k,
// that is the key with exactly k smaller keys.
func (llrb *LLRB[K, V]) Select(k int64) (key K, err error) {
	llrb.assertalive("Select")
	llrb.n_lookups++
	if k < 0 || k >= llrb.Count() {
		fmsg := "Select(): %v not in [0,%v)"
		return key, errors.Wrapf(api.ErrorIndexOutOfRange, fmsg, k, llrb.Count())
	}
	return llrb.selectnode(llrb.root, k).key, nil
}

// RangeCount implement api.IndexReader interface. Return the number of
// keys in [lo, hi], zero if lo > hi.
func (llrb *LLRB[K, V]) RangeCount(lo, hi K) (int64, error) {
	llrb.assertalive("RangeCount")
	if err := llrb.assertbounds("RangeCount", lo, hi); err != nil {
		return 0, err
	}
	llrb.n_ranges++

	if llrb.compare(lo, hi) > 0 {
		return 0, nil
	}
	n := llrb.rank(hi) - llrb.rank(lo)
	if llrb.getnode(hi) != nil {
		n++
	}
	return n, nil
}

//---- local functions

func (llrb *LLRB[K, V]) getnode(key K) *Llrbnode[K, V] {
	nd := llrb.root
	for nd != nil {
		if cmp := llrb.compare(key, nd.key); cmp < 0 {
			nd = nd.left
		} else if cmp > 0 {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

func (llrb *LLRB[K, V]) rank(key K) (r int64) {
	nd := llrb.root
	for nd != nil {
		if cmp := llrb.compare(key, nd.key); cmp < 0 {
			nd = nd.left
		} else if cmp > 0 {
			r += 1 + nd.left.Size()
			nd = nd.right
		} else {
			return r + nd.left.Size()
		}
	}
	return r
}

// REQUIRE: 0 <= k < nd.Size()
func (llrb *LLRB[K, V]) selectnode(nd *Llrbnode[K, V], k int64) *Llrbnode[K, V] {
	for nd != nil {
		if t := nd.left.Size(); t > k {
			nd = nd.left
		} else if t < k {
			nd, k = nd.right, k-t-1
		} else {
			return nd
		}
	}
	panic(errors.Newf("selectnode(): rank %v beyond tree, call the programmer", k))
}

func (llrb *LLRB[K, V]) assertquery(op string, key K) error {
	if llrb.root == nil {
		return errors.Wrapf(api.ErrorEmptyCollection, "%v()", op)
	} else if api.Isnil(key) {
		return errors.Wrapf(api.ErrorInvalidArgument, "%v(): nil key", op)
	}
	return nil
}

func (llrb *LLRB[K, V]) assertbounds(op string, lo, hi K) error {
	if api.Isnil(lo) {
		return errors.Wrapf(api.ErrorInvalidArgument, "%v(): nil low key", op)
	} else if api.Isnil(hi) {
		return errors.Wrapf(api.ErrorInvalidArgument, "%v(): nil high key", op)
	}
	return nil
}

// low <= (keys) <= high
func (llrb *LLRB[K, V]) rangehele(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rangehele(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rangehele(nd.right, lk, hk, callb)
	}
	if !llrb.rangehele(nd.left, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rangehele(nd.right, lk, hk, callb)
}

// low <= (keys) < hk
func (llrb *LLRB[K, V]) rangehelt(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rangehelt(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rangehelt(nd.right, lk, hk, callb)
	}
	if !llrb.rangehelt(nd.left, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rangehelt(nd.right, lk, hk, callb)
}

// low < (keys) <= hk
func (llrb *LLRB[K, V]) rangehtle(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rangehtle(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rangehtle(nd.right, lk, hk, callb)
	}
	if !llrb.rangehtle(nd.left, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rangehtle(nd.right, lk, hk, callb)
}

// low < (keys) < hk
func (llrb *LLRB[K, V]) rangehtlt(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rangehtlt(nd.left, lk, hk, callb)
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rangehtlt(nd.right, lk, hk, callb)
	}
	if !llrb.rangehtlt(nd.left, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rangehtlt(nd.right, lk, hk, callb)
}

// high >= (keys) >= low
func (llrb *LLRB[K, V]) rvrslehe(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rvrslehe(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rvrslehe(nd.left, lk, hk, callb)
	}
	if !llrb.rvrslehe(nd.right, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rvrslehe(nd.left, lk, hk, callb)
}

// high >= (keys) > low
func (llrb *LLRB[K, V]) rvrsleht(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rvrsleht(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) > 0 {
		return llrb.rvrsleht(nd.left, lk, hk, callb)
	}
	if !llrb.rvrsleht(nd.right, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rvrsleht(nd.left, lk, hk, callb)
}

// high > (keys) >= low
func (llrb *LLRB[K, V]) rvrslthe(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) < 0 {
		return llrb.rvrslthe(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rvrslthe(nd.left, lk, hk, callb)
	}
	if !llrb.rvrslthe(nd.right, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rvrslthe(nd.left, lk, hk, callb)
}

// high > (keys) > low
func (llrb *LLRB[K, V]) rvrsltht(
	nd *Llrbnode[K, V], lk, hk *K, callb api.RangeCallb[K, V]) bool {

	if nd == nil {
		return true
	}
	if lk != nil && llrb.compare(nd.key, *lk) <= 0 {
		return llrb.rvrsltht(nd.right, lk, hk, callb)
	}
	if hk != nil && llrb.compare(nd.key, *hk) >= 0 {
		return llrb.rvrsltht(nd.left, lk, hk, callb)
	}
	if !llrb.rvrsltht(nd.right, lk, hk, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return llrb.rvrsltht(nd.left, lk, hk, callb)
}

func (llrb *LLRB[K, V]) heightStats(
	nd *Llrbnode[K, V], depth int64, h *lib.HistogramInt64) {

	if nd == nil {
		return
	}
	h.Add(depth)
	llrb.heightStats(nd.left, depth+1, h)
	llrb.heightStats(nd.right, depth+1, h)
}

func (llrb *LLRB[K, V]) countblacks(nd *Llrbnode[K, V], count int64) int64 {
	if nd != nil {
		if !nd.isred() {
			count++
		}
		x := llrb.countblacks(nd.left, count)
		y := llrb.countblacks(nd.right, count)
		if x != y {
			fmsg := "countblacks(): no. of blacks {left,right} : {%v,%v}"
			panic(errors.Newf(fmsg, x, y))
		}
		return x
	}
	return count
}
