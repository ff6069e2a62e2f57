package llrb

import "io"
import "fmt"
import "strings"

type color uint8

const (
	black color = iota
	red
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// Llrbnode defines a node in LLRB tree. Children are exclusively owned
// by their parent, there are no back pointers.
type Llrbnode[K, V any] struct {
	left  *Llrbnode[K, V]
	right *Llrbnode[K, V]
	key   K
	value V
	size  int64 // number of nodes in the sub-tree rooted at this node.
	color color // color of the link from parent to this node.
}

// Key return entry key.
func (nd *Llrbnode[K, V]) Key() K {
	return nd.key
}

// Value return entry value.
func (nd *Llrbnode[K, V]) Value() V {
	return nd.value
}

// Size return the number of entries in the sub-tree rooted at this node,
// nil node has size 0.
func (nd *Llrbnode[K, V]) Size() int64 {
	if nd == nil {
		return 0
	}
	return nd.size
}

func (nd *Llrbnode[K, V]) resize() *Llrbnode[K, V] {
	nd.size = 1 + nd.left.Size() + nd.right.Size()
	return nd
}

func (nd *Llrbnode[K, V]) isblack() bool {
	if nd == nil {
		return true
	}
	return nd.color == black
}

func (nd *Llrbnode[K, V]) isred() bool {
	if nd == nil {
		return false
	}
	return nd.color == red
}

func (nd *Llrbnode[K, V]) setblack() *Llrbnode[K, V] {
	nd.color = black
	return nd
}

func (nd *Llrbnode[K, V]) setred() *Llrbnode[K, V] {
	nd.color = red
	return nd
}

func (nd *Llrbnode[K, V]) togglelink() *Llrbnode[K, V] {
	if nd.color == red {
		nd.color = black
	} else {
		nd.color = red
	}
	return nd
}

func (nd *Llrbnode[K, V]) repr() string {
	return fmt.Sprintf("%v %v %v", fmtkey(nd.key), nd.color, nd.size)
}

func (nd *Llrbnode[K, V]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	key := fmtkey(nd.key)
	lines := []string{
		fmt.Sprintf("  %q [label=\"{%s|%v}\"];\n", key, key, nd.size),
	}
	fmsg := "  %q -> %q [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, key, fmtkey(nd.left.key), nd.left.color)
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, key, fmtkey(nd.right.key), nd.right.color)
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}

func fmtkey(key interface{}) string {
	if bs, ok := key.([]byte); ok {
		return string(bs)
	}
	return fmt.Sprintf("%v", key)
}
