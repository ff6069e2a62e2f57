package llrb

import "bytes"
import "testing"

func TestNodeColor(t *testing.T) {
	nd := &Llrbnode[int, int]{key: 10, value: 100, size: 1, color: red}
	if nd.isred() == false {
		t.Errorf("expected red")
	} else if nd.togglelink().isblack() == false {
		t.Errorf("expected black")
	} else if nd.togglelink().isred() == false {
		t.Errorf("expected red")
	} else if nd.setblack().color.String() != "black" {
		t.Errorf("unexpected %v", nd.color)
	} else if nd.setred().color.String() != "red" {
		t.Errorf("unexpected %v", nd.color)
	}

	// nil links are black
	var nilnd *Llrbnode[int, int]
	if nilnd.isred() {
		t.Errorf("unexpected red")
	} else if nilnd.isblack() == false {
		t.Errorf("expected black")
	} else if nilnd.Size() != 0 {
		t.Errorf("unexpected %v", nilnd.Size())
	}
}

func TestNodeAccessors(t *testing.T) {
	left := &Llrbnode[int, int]{key: 5, size: 1}
	nd := &Llrbnode[int, int]{key: 10, value: 100, left: left}
	if nd.Key() != 10 {
		t.Errorf("unexpected %v", nd.Key())
	} else if nd.Value() != 100 {
		t.Errorf("unexpected %v", nd.Value())
	} else if nd.resize().Size() != 2 {
		t.Errorf("unexpected %v", nd.Size())
	}
	if s := nd.repr(); s != "10 black 2" {
		t.Errorf("unexpected %q", s)
	}
}

func TestNodeDotdump(t *testing.T) {
	left := &Llrbnode[[]byte, int]{key: []byte("a"), size: 1, color: red}
	nd := &Llrbnode[[]byte, int]{key: []byte("b"), size: 2, left: left}

	buf := bytes.NewBuffer(nil)
	nd.dotdump(buf)
	ref := "  \"b\" [label=\"{b|2}\"];\n" +
		"  \"b\" -> \"a\" [color=red];\n" +
		"  \"a\" [label=\"{a|1}\"];\n"
	if s := buf.String(); s != ref {
		t.Errorf("expected %q, got %q", ref, s)
	}
}
