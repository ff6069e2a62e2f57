package llrb

import "math"

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/lib"

// height of the tree cannot exceed factor*log2(entries+1), which is
// 2*log2(entries+1) for a well formed llrb tree.
func maxheight(factor float64, entries int64) float64 {
	return factor * math.Log2(float64(entries+1))
}

// LLRB rule, from sedgewick's paper.
var errRedafterred = errors.New("consecutive red spotted")

// LLRB rule, from sedgewick's paper.
var errRedright = errors.New("right leaning red link spotted")

var errRedroot = errors.New("root is red")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return errors.Newf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate the entire tree, return nil if tree is in symmetric order,
// simulates a 2-3 tree, is perfectly black balanced, sub-tree sizes are
// consistent, rank and select agree with each other, height is within
// bounds and statistics are consistent. Otherwise return an error
// describing the first violation.
func (llrb *LLRB[K, V]) Validate() error {
	llrb.assertalive("Validate")

	root := llrb.root
	if root.isred() {
		return errRedroot
	}

	if err := llrb.validateorder(); err != nil {
		return err
	}

	h := lib.NewhistorgramInt64(1, llrb.maxdepth, 1)
	_, _, err := llrb.validatetree(root, false /*fromred*/, 0 /*blacks*/, 1 /*depth*/, h)
	if err != nil {
		return err
	}

	// `h_height`.max should not exceed certain limit
	entries := llrb.Count()
	if height := float64(h.Max()); height > maxheight(llrb.heightfactor, entries) {
		fmsg := "validate(): max height %v exceeds %v*log2(%v+1)"
		return errors.Newf(fmsg, height, llrb.heightfactor, entries)
	}

	if err := llrb.validaterank(); err != nil {
		return err
	}
	return llrb.validatestats()
}

// Check return true if Validate() succeeds.
func (llrb *LLRB[K, V]) Check() bool {
	return llrb.Validate() == nil
}

// every key in the in-order walk must be strictly greater than its
// predecessor.
func (llrb *LLRB[K, V]) validateorder() (err error) {
	var prev *Llrbnode[K, V]
	var walk func(nd *Llrbnode[K, V]) bool
	walk = func(nd *Llrbnode[K, V]) bool {
		if nd == nil {
			return true
		}
		if !walk(nd.left) {
			return false
		}
		if prev != nil && llrb.compare(prev.key, nd.key) >= 0 {
			fmsg := "validate(): sort order, node %v is >= next node %v"
			err = errors.Newf(fmsg, fmtkey(prev.key), fmtkey(nd.key))
			return false
		}
		prev = nd
		return walk(nd.right)
	}
	walk(llrb.root)
	return err
}

func (llrb *LLRB[K, V]) validatetree(
	nd *Llrbnode[K, V], fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, size int64, err error) {

	if nd == nil {
		return blacks, 0, nil
	}

	h.Add(depth)
	if fromred && nd.isred() {
		return 0, 0, errors.Wrapf(errRedafterred, "at %v", nd.repr())
	} else if nd.right.isred() {
		return 0, 0, errors.Wrapf(errRedright, "at %v", nd.repr())
	}
	if !nd.isred() {
		blacks++
	}

	lblacks, lsize, err := llrb.validatetree(nd.left, nd.isred(), blacks, depth+1, h)
	if err != nil {
		return 0, 0, err
	}
	rblacks, rsize, err := llrb.validatetree(nd.right, nd.isred(), blacks, depth+1, h)
	if err != nil {
		return 0, 0, err
	}

	if lblacks != rblacks {
		return 0, 0, unbalancedblacks(lblacks, rblacks)
	}
	if size = 1 + lsize + rsize; size != nd.size {
		fmsg := "validate(): size of %v is %v, expected %v"
		return 0, 0, errors.Newf(fmsg, fmtkey(nd.key), nd.size, size)
	}
	return lblacks, size, nil
}

// rank(select(i)) == i for every i in [0, n), and select(rank(key)) == key
// for every key in the tree.
func (llrb *LLRB[K, V]) validaterank() error {
	for i, n := int64(0), llrb.Count(); i < n; i++ {
		nd := llrb.selectnode(llrb.root, i)
		if r := llrb.rank(nd.key); r != i {
			fmsg := "validate(): rank(select(%v)) is %v"
			return errors.Newf(fmsg, i, r)
		}
	}

	var err error
	llrb.rangehele(llrb.root, nil, nil, func(key K, _ V) bool {
		nd := llrb.selectnode(llrb.root, llrb.rank(key))
		if llrb.compare(nd.key, key) != 0 {
			fmsg := "validate(): select(rank(%v)) is %v"
			err = errors.Newf(fmsg, fmtkey(key), fmtkey(nd.key))
			return false
		}
		return true
	})
	return err
}

func (llrb *LLRB[K, V]) validatestats() error {
	// n_count should match (n_inserts - n_deletes)
	n_count := llrb.n_count
	n_inserts, n_deletes := llrb.n_inserts, llrb.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		return errors.Newf(fmsg, n_count, n_inserts, n_deletes)
	}
	// n_count should match number of nodes in the tree
	if size := llrb.root.Size(); n_count != size {
		fmsg := "validatestats(): n_count:%v != tree-size:%v"
		return errors.Newf(fmsg, n_count, size)
	}
	// n_nodes - n_frees should match n_count
	n_nodes, n_frees := llrb.n_nodes, llrb.n_frees
	if (n_nodes - n_frees) != n_count {
		fmsg := "validatestats(): (n_nodes:%v - n_frees:%v) != n_count:%v"
		return errors.Newf(fmsg, n_nodes, n_frees, n_count)
	}
	return nil
}
