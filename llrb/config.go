package llrb

import "github.com/bnclabs/symtab/lib"

// Defaultsettings for llrb instance.
//
// "debug.validate" (bool, default: false),
//		Validate the entire tree after every mutation, panic on the
//		first violated invariant. Expensive, meant for tests.
//
// "maxheight.factor" (float64, default: 2.0),
//		Validate() shall fail if height of the tree exceeds
//		factor * log2(n+1).
//
// "histogram.depth" (int64, default: 64),
//		Upper bucket for upsert-depth and height histograms, samples
//		beyond this are accounted in the last bucket.
//
func Defaultsettings() lib.Settings {
	return lib.Settings{
		"debug.validate":   false,
		"maxheight.factor": float64(2.0),
		"histogram.depth":  int64(64),
	}
}
