// Package symtab is an in-memory ordered symbol table built on a
// left-leaning red-black tree.
//
// Sub-packages:
//
//	api        error kinds, Comparator and the Index interface.
//	llrb       LLRB tree implementing api.Index, with rank/select,
//	           floor/ceiling, range iteration and an invariant checker.
//	dict       map-backed api.Index, used as a reference in tests.
//	lib        settings and statistics helpers.
//	log        leveled logging.
//	tools/llrb command line harness to load and check trees.
//
// Access to a tree is single threaded; callers must serialize
// concurrent use.
package symtab
