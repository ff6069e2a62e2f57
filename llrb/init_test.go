package llrb

import "github.com/bnclabs/symtab/log"

func init() {
	setts := map[string]interface{}{
		"log.level": "ignore",
		"log.file":  "",
	}
	log.SetLogger(nil, setts)
	LogComponents("self")
}
