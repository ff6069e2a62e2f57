package llrb

import "github.com/cockroachdb/errors"

import "github.com/bnclabs/symtab/lib"

func (llrb *LLRB[K, V]) readsettings(setts lib.Settings) {
	llrb.dovalidate = setts.Bool("debug.validate")
	llrb.heightfactor = setts.Float64("maxheight.factor")
	llrb.maxdepth = setts.Int64("histogram.depth")

	if llrb.heightfactor < 2.0 {
		fmsg := "maxheight.factor(%v) cannot be less than 2.0"
		panic(errors.Newf(fmsg, llrb.heightfactor))
	} else if llrb.maxdepth < 1 {
		panic(errors.Newf("histogram.depth(%v) must be positive", llrb.maxdepth))
	}
	llrb.setts = setts
}
