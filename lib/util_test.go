package lib

import "testing"
import "strings"

import "github.com/stretchr/testify/require"

func TestPrettystats(t *testing.T) {
	stats := map[string]interface{}{"n_count": int64(10), "n_frees": int64(2)}

	ref := `{"n_count":10,"n_frees":2}`
	require.Equal(t, ref, Prettystats(stats, false))

	out := Prettystats(stats, true)
	require.True(t, strings.Contains(out, "\n  \"n_count\": 10"), out)

	stats["bad"] = make(chan int)
	require.Panics(t, func() { Prettystats(stats, false) })
}
