package main

import "fmt"
import "iter"
import "flag"
import "time"
import "reflect"
import "math/rand"

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/api"
import "github.com/bnclabs/symtab/dict"
import "github.com/bnclabs/symtab/llrb"

var checkopts struct {
	n     int64
	ops   int
	seed  int64
	vtick int
}

func parseCheckopts(args []string) error {
	f := flag.NewFlagSet("check", flag.ExitOnError)

	f.Int64Var(&checkopts.n, "n", 10000,
		"keys are generated in the range [0,n)")
	f.IntVar(&checkopts.ops, "ops", 100000,
		"number of operations to generate")
	f.Int64Var(&checkopts.seed, "seed", time.Now().UnixNano(),
		"seed value for generating inputs")
	f.IntVar(&checkopts.vtick, "vtick", 1000,
		"validate the tree for every vtick operations")
	f.Parse(args)

	if checkopts.n <= 0 {
		return errors.Newf("invalid key range %v", checkopts.n)
	} else if checkopts.vtick <= 0 {
		return errors.Newf("invalid vtick %v", checkopts.vtick)
	}
	return nil
}

func doCheck(args []string) error {
	if err := parseCheckopts(args); err != nil {
		return err
	}
	fmt.Printf("Seed: %v\n", checkopts.seed)

	tree := llrb.NewOrdered[int64, int64]("check", llrb.Defaultsettings())
	defer tree.Destroy()
	ref := dict.NewOrdered[int64, int64]("check")
	defer ref.Destroy()

	r := rand.New(rand.NewSource(checkopts.seed))
	opcounts := map[string]int{}
	for i := 1; i <= checkopts.ops; i++ {
		op, err := checkop(r, tree, ref)
		if err != nil {
			return errors.Wrapf(err, "op %v %v", i, op)
		}
		opcounts[op]++
		if i%checkopts.vtick == 0 {
			if err := tree.Validate(); err != nil {
				return errors.Wrapf(err, "validate after op %v", i)
			}
		}
	}
	if err := tree.Validate(); err != nil {
		return err
	}
	if err := compareall(tree, ref); err != nil {
		return err
	}
	fmt.Printf("ops: %v\n", opcounts)
	fmt.Printf("count: %v, height: %v\n", tree.Count(), tree.Height())
	tree.Log(true)
	return nil
}

// checkop apply a random operation on both indexes and compare
// their results.
func checkop(
	r *rand.Rand, tree api.Index[int64, int64],
	ref api.Index[int64, int64]) (string, error) {

	key, value := r.Int63n(checkopts.n), r.Int63()

	compare := func(op string, x, y []interface{}) (string, error) {
		if !reflect.DeepEqual(x, y) {
			return op, errors.Newf("key %v: llrb %v, dict %v", key, x, y)
		}
		return op, nil
	}
	iserr := func(err error) bool { return err != nil }

	switch r.Intn(11) {
	case 0:
		return compare("upsert",
			[]interface{}{iserr(tree.Upsert(key, value))},
			[]interface{}{iserr(ref.Upsert(key, value))})
	case 1:
		return compare("set",
			[]interface{}{iserr(tree.Set(key, value))},
			[]interface{}{iserr(ref.Set(key, value))})
	case 2:
		v1, ok1, err1 := tree.Delete(key)
		v2, ok2, err2 := ref.Delete(key)
		return compare("delete",
			[]interface{}{v1, ok1, iserr(err1)}, []interface{}{v2, ok2, iserr(err2)})
	case 3:
		k1, v1, err1 := tree.DeleteMin()
		k2, v2, err2 := ref.DeleteMin()
		return compare("deletemin",
			[]interface{}{k1, v1, iserr(err1)}, []interface{}{k2, v2, iserr(err2)})
	case 4:
		k1, v1, err1 := tree.DeleteMax()
		k2, v2, err2 := ref.DeleteMax()
		return compare("deletemax",
			[]interface{}{k1, v1, iserr(err1)}, []interface{}{k2, v2, iserr(err2)})
	case 5:
		v1, ok1 := tree.Get(key)
		v2, ok2 := ref.Get(key)
		return compare("get", []interface{}{v1, ok1}, []interface{}{v2, ok2})
	case 6:
		k1, ok1, err1 := tree.Floor(key)
		k2, ok2, err2 := ref.Floor(key)
		return compare("floor",
			[]interface{}{k1, ok1, iserr(err1)}, []interface{}{k2, ok2, iserr(err2)})
	case 7:
		k1, ok1, err1 := tree.Ceiling(key)
		k2, ok2, err2 := ref.Ceiling(key)
		return compare("ceiling",
			[]interface{}{k1, ok1, iserr(err1)}, []interface{}{k2, ok2, iserr(err2)})
	case 8:
		return compare("rank",
			[]interface{}{tree.Rank(key)}, []interface{}{ref.Rank(key)})
	case 9:
		k := r.Int63n(tree.Count()+2) - 1
		k1, err1 := tree.Select(k)
		k2, err2 := ref.Select(k)
		return compare("select",
			[]interface{}{k1, iserr(err1)}, []interface{}{k2, iserr(err2)})
	default:
		hi := key + r.Int63n(checkopts.n/10+1)
		n1, err1 := tree.RangeCount(key, hi)
		n2, err2 := ref.RangeCount(key, hi)
		return compare("rangecount",
			[]interface{}{n1, iserr(err1)}, []interface{}{n2, iserr(err2)})
	}
}

func compareall(tree, ref api.Index[int64, int64]) error {
	if x, y := tree.Count(), ref.Count(); x != y {
		return errors.Newf("count mismatch llrb %v, dict %v", x, y)
	}
	next, stop := iter.Pull2(ref.All())
	defer stop()
	for key, value := range tree.All() {
		refkey, refvalue, ok := next()
		if !ok {
			return errors.Newf("dict exhausted before llrb at %v", key)
		} else if key != refkey || value != refvalue {
			fmsg := "entry mismatch llrb {%v,%v}, dict {%v,%v}"
			return errors.Newf(fmsg, key, value, refkey, refvalue)
		}
	}
	return nil
}
