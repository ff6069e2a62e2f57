package llrb

import "io"
import "fmt"
import "cmp"
import "strings"

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/api"
import "github.com/bnclabs/symtab/lib"

type llrbstats struct {
	n_count   int64 // number of entries in the tree.
	n_lookups int64
	n_ranges  int64
	n_inserts int64
	n_updates int64
	n_deletes int64
	n_nodes   int64
	n_frees   int64
}

// LLRB manage a single instance of in-memory ordered symbol table using
// left-leaning-red-black tree.
type LLRB[K, V any] struct { // tree container
	llrbstats
	h_upsertdepth *lib.HistogramInt64

	name    string
	root    *Llrbnode[K, V]
	compare api.Comparator[K]
	dead    bool

	// settings
	dovalidate   bool    // debug.validate
	heightfactor float64 // maxheight.factor
	maxdepth     int64   // histogram.depth
	setts        lib.Settings
	logprefix    string
}

// NewLLRB a new instance of in-memory ordered symbol table, keys are
// ordered using compare. Parameters in setts override Defaultsettings().
func NewLLRB[K, V any](
	name string, compare api.Comparator[K], setts lib.Settings) *LLRB[K, V] {

	if compare == nil {
		panic("NewLLRB(): nil comparator")
	}

	llrb := &LLRB[K, V]{name: name, compare: compare}
	llrb.logprefix = fmt.Sprintf("LLRB [%s]", name)

	setts = make(lib.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	debugf("%v settings %v\n", llrb.logprefix, setts)

	// statistics
	llrb.h_upsertdepth = lib.NewhistorgramInt64(1, llrb.maxdepth, 1)

	infof("%v started ...\n", llrb.logprefix)
	return llrb
}

// NewOrdered return a new LLRB for key types supporting the builtin
// ordering operators.
func NewOrdered[K cmp.Ordered, V any](name string, setts lib.Settings) *LLRB[K, V] {
	return NewLLRB[K, V](name, cmp.Compare[K], setts)
}

// NewBytes return a new LLRB with binary keys ordered lexicographically.
func NewBytes[V any](name string, setts lib.Settings) *LLRB[[]byte, V] {
	return NewLLRB[[]byte, V](name, api.Binarycmp, setts)
}

// Dotdump to convert whole tree into dot script that can be visualized using
// graphviz.
func (llrb *LLRB[K, V]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph llrb {",
		"  node[shape=record];\n",
		"}\n",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	llrb.root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

// ---- api.IndexMeta{} interface

// ID implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) ID() string {
	return llrb.name
}

// Count implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) Count() int64 {
	return llrb.root.Size()
}

// Isempty implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) Isempty() bool {
	return llrb.root == nil
}

// Height return the number of nodes on the longest path from root to
// a nil link, zero for an empty tree.
func (llrb *LLRB[K, V]) Height() int64 {
	var height func(nd *Llrbnode[K, V]) int64
	height = func(nd *Llrbnode[K, V]) int64 {
		if nd == nil {
			return 0
		}
		return 1 + max(height(nd.left), height(nd.right))
	}
	return height(llrb.root)
}

// Stats return a map of counters and upsert-depth histogram.
func (llrb *LLRB[K, V]) Stats() map[string]interface{} {
	return llrb.stats()
}

// Fullstats is Stats() along with a height histogram and black-height,
// walks the entire tree.
func (llrb *LLRB[K, V]) Fullstats() map[string]interface{} {
	return llrb.fullstats()
}

// Log statistics, counts shall be humanized if humanize is true.
func (llrb *LLRB[K, V]) Log(humanize bool) {
	llrb.log(humanize)
}

// Clone return a deep copy of the tree under a new name. Keys and values
// are copied by assignment.
func (llrb *LLRB[K, V]) Clone(name string) *LLRB[K, V] {
	llrb.assertalive("Clone")

	newllrb := NewLLRB[K, V](name, llrb.compare, llrb.setts)
	newllrb.root = llrb.clonetree(llrb.root)
	n := newllrb.root.Size()
	newllrb.n_count, newllrb.n_inserts, newllrb.n_nodes = n, n, n
	infof("%v cloned into %v\n", llrb.logprefix, newllrb.logprefix)
	return newllrb
}

// Destroy the tree, any further operation on this instance shall panic.
func (llrb *LLRB[K, V]) Destroy() {
	if llrb.dead == false {
		llrb.root, llrb.setts = nil, nil
		llrb.dead = true
		infof("%v destroyed\n", llrb.logprefix)
		return
	}
	panic("Destroy(): already dead tree")
}

//---- api.IndexWriter interface

// Upsert implement api.IndexWriter interface. Insert key, value if key is
// not present, else overwrite the value.
func (llrb *LLRB[K, V]) Upsert(key K, value V) error {
	llrb.assertalive("Upsert")
	if api.Isnil(key) {
		return errors.Wrapf(api.ErrorInvalidArgument, "Upsert(): nil key")
	} else if api.Isnil(value) {
		return errors.Wrapf(api.ErrorInvalidArgument, "Upsert(): nil value")
	}

	root, inserted := llrb.upsert(llrb.root, 1 /*depth*/, key, value)
	llrb.root = root.setblack()
	llrb.upsertcounts(inserted)

	llrb.debugvalidate("Upsert")
	return nil
}

// Set implement api.IndexWriter interface. Same as Upsert, except
// that a nil value shall delete the key.
func (llrb *LLRB[K, V]) Set(key K, value V) error {
	if api.Isnil(value) {
		_, _, err := llrb.Delete(key)
		return err
	}
	return llrb.Upsert(key, value)
}

// returns root, and whether a new node was created.
func (llrb *LLRB[K, V]) upsert(
	nd *Llrbnode[K, V], depth int64, key K, value V) (*Llrbnode[K, V], bool) {

	var inserted bool

	if nd == nil {
		llrb.h_upsertdepth.Add(depth)
		return llrb.newnode(key, value), true
	}

	if cmp := llrb.compare(key, nd.key); cmp < 0 {
		nd.left, inserted = llrb.upsert(nd.left, depth+1, key, value)
	} else if cmp > 0 {
		nd.right, inserted = llrb.upsert(nd.right, depth+1, key, value)
	} else {
		nd.value = value
		llrb.h_upsertdepth.Add(depth)
		return nd, false
	}
	if !inserted {
		return nd, false
	}
	return llrb.walkuprot23(nd), true
}

// DeleteMin implement api.IndexWriter interface.
func (llrb *LLRB[K, V]) DeleteMin() (key K, value V, err error) {
	llrb.assertalive("DeleteMin")
	if llrb.root == nil {
		err = errors.Wrapf(api.ErrorEmptyCollection, "DeleteMin()")
		return key, value, err
	}

	root := llrb.root
	if !root.left.isred() && !root.right.isred() {
		root.setred()
	}
	root, deleted := llrb.deletemin(root)
	if root != nil {
		root.setblack()
	}
	llrb.root = root

	key, value = deleted.key, deleted.value
	llrb.freenode(deleted)
	llrb.delcount()

	llrb.debugvalidate("DeleteMin")
	return key, value, nil
}

// using 2-3 trees
func (llrb *LLRB[K, V]) deletemin(nd *Llrbnode[K, V]) (newnd, deleted *Llrbnode[K, V]) {
	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !nd.left.isred() && !nd.left.left.isred() {
		nd = llrb.moveredleft(nd)
	}
	nd.left, deleted = llrb.deletemin(nd.left)
	return llrb.fixup(nd), deleted
}

// DeleteMax implements api.IndexWriter interface.
func (llrb *LLRB[K, V]) DeleteMax() (key K, value V, err error) {
	llrb.assertalive("DeleteMax")
	if llrb.root == nil {
		err = errors.Wrapf(api.ErrorEmptyCollection, "DeleteMax()")
		return key, value, err
	}

	root := llrb.root
	if !root.left.isred() && !root.right.isred() {
		root.setred()
	}
	root, deleted := llrb.deletemax(root)
	if root != nil {
		root.setblack()
	}
	llrb.root = root

	key, value = deleted.key, deleted.value
	llrb.freenode(deleted)
	llrb.delcount()

	llrb.debugvalidate("DeleteMax")
	return key, value, nil
}

// using 2-3 trees
func (llrb *LLRB[K, V]) deletemax(nd *Llrbnode[K, V]) (newnd, deleted *Llrbnode[K, V]) {
	if nd == nil {
		return nil, nil
	}
	if nd.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.right == nil {
		return nil, nd
	}
	if !nd.right.isred() && !nd.right.left.isred() {
		nd = llrb.moveredright(nd)
	}
	nd.right, deleted = llrb.deletemax(nd.right)
	return llrb.fixup(nd), deleted
}

// Delete implement api.IndexWriter interface. Deleting a missing key
// is not an error, ok shall be false and the tree left untouched.
func (llrb *LLRB[K, V]) Delete(key K) (value V, ok bool, err error) {
	llrb.assertalive("Delete")
	if api.Isnil(key) {
		err = errors.Wrapf(api.ErrorInvalidArgument, "Delete(): nil key")
		return value, false, err
	}

	nd := llrb.getnode(key)
	if nd == nil {
		return value, false, nil
	}
	// nd can inherit its successor's entry while deleting.
	value = nd.value

	root := llrb.root
	if !root.left.isred() && !root.right.isred() {
		root.setred()
	}
	root = llrb.delete(root, key)
	if root != nil {
		root.setblack()
	}
	llrb.root = root
	llrb.delcount()

	llrb.debugvalidate("Delete")
	return value, true, nil
}

// REQUIRE: key must be present in the sub-tree rooted at nd.
func (llrb *LLRB[K, V]) delete(nd *Llrbnode[K, V], key K) *Llrbnode[K, V] {
	if llrb.compare(key, nd.key) < 0 {
		if !nd.left.isred() && !nd.left.left.isred() {
			nd = llrb.moveredleft(nd)
		}
		nd.left = llrb.delete(nd.left, key)

	} else {
		if nd.left.isred() {
			nd = llrb.rotateright(nd)
		}
		// If key equals nd.key and no right children at nd
		if llrb.compare(key, nd.key) == 0 && nd.right == nil {
			llrb.freenode(nd)
			return nil
		}
		if nd.right != nil && !nd.right.isred() && !nd.right.left.isred() {
			nd = llrb.moveredright(nd)
		}
		// If key equals nd.key, and (from above) nd.right != nil
		if llrb.compare(key, nd.key) == 0 {
			var subdeleted *Llrbnode[K, V]
			nd.right, subdeleted = llrb.deletemin(nd.right)
			if subdeleted == nil {
				panic("delete(): fatal logic, call the programmer")
			}
			nd.key, nd.value = subdeleted.key, subdeleted.value
			llrb.freenode(subdeleted)

		} else { // Else, key is bigger than nd.key
			nd.right = llrb.delete(nd.right, key)
		}
	}
	return llrb.fixup(nd)
}

// rotation routines for 2-3 algorithm

func (llrb *LLRB[K, V]) walkuprot23(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	if nd.right.isred() && !nd.left.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd.resize()
}

func (llrb *LLRB[K, V]) rotateleft(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	y := nd.right
	if y.isblack() {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	y.left = nd
	y.color = nd.color
	nd.setred()
	y.size = nd.size
	nd.resize()
	return y
}

func (llrb *LLRB[K, V]) rotateright(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	x := nd.left
	if x.isblack() {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	x.right = nd
	x.color = nd.color
	nd.setred()
	x.size = nd.size
	nd.resize()
	return x
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) flip(nd *Llrbnode[K, V]) {
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) moveredleft(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	llrb.flip(nd)
	if nd.right.left.isred() {
		nd.right = llrb.rotateright(nd.right)
		nd = llrb.rotateleft(nd)
		llrb.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) moveredright(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	llrb.flip(nd)
	if nd.left.left.isred() {
		nd = llrb.rotateright(nd)
		llrb.flip(nd)
	}
	return nd
}

func (llrb *LLRB[K, V]) fixup(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	if nd.right.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd.resize()
}

//---- local functions

func (llrb *LLRB[K, V]) newnode(key K, value V) *Llrbnode[K, V] {
	nd := &Llrbnode[K, V]{key: key, value: value, size: 1, color: red}
	llrb.n_nodes++
	return nd
}

func (llrb *LLRB[K, V]) freenode(nd *Llrbnode[K, V]) {
	if nd != nil {
		nd.left, nd.right = nil, nil
		llrb.n_frees++
	}
}

func (llrb *LLRB[K, V]) clonetree(nd *Llrbnode[K, V]) *Llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	newnd := *nd
	newnd.left = llrb.clonetree(nd.left)
	newnd.right = llrb.clonetree(nd.right)
	return &newnd
}

func (llrb *LLRB[K, V]) upsertcounts(inserted bool) {
	if inserted {
		llrb.n_count++
		llrb.n_inserts++
		return
	}
	llrb.n_updates++
}

func (llrb *LLRB[K, V]) delcount() {
	llrb.n_count--
	llrb.n_deletes++
}

func (llrb *LLRB[K, V]) assertalive(op string) {
	if llrb.dead {
		panic(fmt.Sprintf("%v(): %v is destroyed", op, llrb.logprefix))
	}
}

func (llrb *LLRB[K, V]) debugvalidate(op string) {
	if llrb.dovalidate {
		if err := llrb.Validate(); err != nil {
			errorf("%v %v(): %v\n", llrb.logprefix, op, err)
			panic(errors.Wrapf(err, "%v()", op))
		}
	}
}
