package llrb

import "github.com/cockroachdb/errors"
import gohumanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/symtab/lib"
import "github.com/bnclabs/symtab/log"

func (llrb *LLRB[K, V]) stats() map[string]interface{} {
	stats := llrb.stattree(map[string]interface{}{})
	stats["h_upsertdepth"] = llrb.h_upsertdepth.Fullstats()
	return stats
}

func (llrb *LLRB[K, V]) fullstats() map[string]interface{} {
	stats := llrb.stats()
	h_heightav := lib.NewhistorgramInt64(1, llrb.maxdepth, 1)
	llrb.heightStats(llrb.root, 1 /*depth*/, h_heightav)
	stats["h_height"] = h_heightav.Fullstats()
	stats["n_blacks"] = llrb.countblacks(llrb.root, 0)

	h_height := stats["h_height"].(map[string]interface{})
	if x := h_height["samples"].(int64); x != llrb.Count() {
		fmsg := "expected h_height.samples:%v to be same as llrb.Count():%v"
		panic(errors.Newf(fmsg, x, llrb.Count()))
	}
	return stats
}

// tree statistics -
func (llrb *LLRB[K, V]) stattree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = llrb.n_count
	stats["n_lookups"] = llrb.n_lookups
	stats["n_ranges"] = llrb.n_ranges
	stats["n_inserts"] = llrb.n_inserts
	stats["n_updates"] = llrb.n_updates
	stats["n_deletes"] = llrb.n_deletes
	stats["n_nodes"] = llrb.n_nodes
	stats["n_frees"] = llrb.n_frees
	return stats
}

func (llrb *LLRB[K, V]) log(humanize bool) {
	stats := llrb.fullstats()

	if humanize {
		dohumanize := func(key string) string {
			return gohumanize.Comma(stats[key].(int64))
		}
		fmsg := "%v count:%v inserts:%v updates:%v deletes:%v\n"
		log.Infof(
			fmsg, llrb.logprefix, dohumanize("n_count"), dohumanize("n_inserts"),
			dohumanize("n_updates"), dohumanize("n_deletes"))
		fmsg = "%v lookups:%v ranges:%v nodes:%v frees:%v\n"
		log.Infof(
			fmsg, llrb.logprefix, dohumanize("n_lookups"), dohumanize("n_ranges"),
			dohumanize("n_nodes"), dohumanize("n_frees"))
	}

	// log statistics
	log.Infof("%v stats %v\n", llrb.logprefix, lib.Prettystats(stats, false))
}
