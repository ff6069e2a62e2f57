package main

import "os"
import "fmt"
import "runtime"

import "github.com/cloudfoundry/gosigar"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/symtab/log"
import "github.com/bnclabs/symtab/llrb"

func usage() {
	fmt.Printf("usage: llrb <command> [options]\n")
	fmt.Printf("  load   load keys into a tree and report its shape\n")
	fmt.Printf("  check  compare random operations against reference dict\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	setts := map[string]interface{}{"log.level": "info", "log.file": ""}
	log.SetLogger(nil, setts)
	llrb.LogComponents("self")

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "load":
		err = doLoad(args)
	case "check":
		err = doCheck(args)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("%v failed: %+v\n", os.Args[1], err)
		os.Exit(2)
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

func printmem(prefix string) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	total, used, free := getsysmem()
	fmsg := "%v heap:%v sys:%v | system total:%v used:%v free:%v\n"
	fmt.Printf(
		fmsg, prefix, humanize.Bytes(ms.HeapAlloc), humanize.Bytes(ms.Sys),
		humanize.Bytes(total), humanize.Bytes(used), humanize.Bytes(free))
}
