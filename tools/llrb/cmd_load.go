package main

import "os"
import "fmt"
import "flag"
import "time"
import "math/rand"

import "github.com/cockroachdb/errors"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/symtab/lib"
import "github.com/bnclabs/symtab/llrb"

var loadopts struct {
	n        int
	seed     int64
	order    string
	humanize bool
	validate bool
	dotfile  string
	pretty   bool
}

func parseLoadopts(args []string) error {
	f := flag.NewFlagSet("load", flag.ExitOnError)

	f.IntVar(&loadopts.n, "n", 1000,
		"number of items to generate and insert")
	f.Int64Var(&loadopts.seed, "seed", time.Now().UnixNano(),
		"seed value for generating keys")
	f.StringVar(&loadopts.order, "order", "random",
		"order of keys: random, asc, desc")
	f.BoolVar(&loadopts.humanize, "humanize", true,
		"humanize numbers in stats")
	f.BoolVar(&loadopts.validate, "validate", false,
		"validate tree after every mutation")
	f.StringVar(&loadopts.dotfile, "dotfile", "",
		"dump dot file output of the LLRB tree")
	f.BoolVar(&loadopts.pretty, "pretty", false,
		"print full statistics as indented json")
	f.Parse(args)

	switch loadopts.order {
	case "random", "asc", "desc":
	default:
		return errors.Newf("invalid order %q", loadopts.order)
	}
	if loadopts.n < 0 {
		return errors.Newf("invalid count %v", loadopts.n)
	}
	return nil
}

func doLoad(args []string) error {
	if err := parseLoadopts(args); err != nil {
		return err
	}
	fmt.Printf("Seed: %v\n", loadopts.seed)

	setts := llrb.Defaultsettings()
	setts["debug.validate"] = loadopts.validate
	tree := llrb.NewOrdered[int64, int64]("load", setts)
	defer tree.Destroy()

	printmem("before load")
	now := time.Now()
	for _, key := range loadkeys(loadopts.n, loadopts.order, loadopts.seed) {
		if err := tree.Upsert(key, key); err != nil {
			return err
		}
	}
	took := time.Since(now)
	fmsg := "Took %v to insert %v items\n"
	fmt.Printf(fmsg, took, humanize.Comma(tree.Count()))
	printmem("after load")

	if err := tree.Validate(); err != nil {
		return errors.Wrapf(err, "validate")
	}
	stats := tree.Fullstats()
	fmt.Printf("height: %v, black-height: %v\n", tree.Height(), stats["n_blacks"])
	if loadopts.pretty {
		fmt.Printf("%v\n", lib.Prettystats(stats, true))
	}
	tree.Log(loadopts.humanize)

	if loadopts.dotfile != "" {
		fd, err := os.Create(loadopts.dotfile)
		if err != nil {
			return errors.Wrapf(err, "create %q", loadopts.dotfile)
		}
		defer fd.Close()
		tree.Dotdump(fd)
	}
	return nil
}

func loadkeys(n int, order string, seed int64) []int64 {
	keys := make([]int64, 0, n)
	switch order {
	case "asc":
		for i := 0; i < n; i++ {
			keys = append(keys, int64(i))
		}
	case "desc":
		for i := n - 1; i >= 0; i-- {
			keys = append(keys, int64(i))
		}
	default:
		r := rand.New(rand.NewSource(seed))
		for _, i := range r.Perm(n) {
			keys = append(keys, int64(i))
		}
	}
	return keys
}
