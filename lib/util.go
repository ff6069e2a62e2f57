package lib

import "encoding/json"

import "github.com/cockroachdb/errors"

// Prettystats uses json.MarshalIndent, if pretty is true, instead of
// json.Marshal. If Marshal return error Prettystats will panic.
func Prettystats(stats map[string]interface{}, pretty bool) string {
	if pretty {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			panic(errors.Wrapf(err, "Prettystats()"))
		}
		return string(data)
	}
	data, err := json.Marshal(stats)
	if err != nil {
		panic(errors.Wrapf(err, "Prettystats()"))
	}
	return string(data)
}
