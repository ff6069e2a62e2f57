package llrb

import "fmt"
import "slices"
import "testing"

import "github.com/stretchr/testify/require"

func TestRange(t *testing.T) {
	llrb, keys := makeevens(t, 50)
	defer llrb.Destroy()

	refrange := func(lo, hi int, incl string, reverse bool) []int {
		out := []int{}
		for _, key := range keys {
			lok := key > lo || (key == lo && (incl == "low" || incl == "both"))
			hok := key < hi || (key == hi && (incl == "high" || incl == "both"))
			if lok && hok {
				out = append(out, key)
			}
		}
		if reverse {
			slices.Reverse(out)
		}
		return out
	}

	bounds := [][2]int{
		{0, 98}, {-1, 100}, {10, 20}, {11, 21}, {10, 10}, {11, 11},
		{20, 10}, {98, 98}, {0, 0},
	}
	for _, bound := range bounds {
		for _, incl := range []string{"both", "low", "high", "none"} {
			for _, reverse := range []bool{false, true} {
				lo, hi := bound[0], bound[1]
				out := []int{}
				err := llrb.Range(lo, hi, incl, reverse, func(key, value int) bool {
					if value*2 != key {
						t.Errorf("unexpected value %v for %v", value, key)
					}
					out = append(out, key)
					return true
				})
				require.NoError(t, err)
				ref := refrange(lo, hi, incl, reverse)
				msg := fmt.Sprintf("[%v,%v] %v %v", lo, hi, incl, reverse)
				require.Equal(t, ref, out, msg)
			}
		}
	}
}

func TestRangeEqualBounds(t *testing.T) {
	llrb, _ := makeevens(t, 10)
	defer llrb.Destroy()

	collect := func(incl string, reverse bool) []int {
		out := []int{}
		err := llrb.Range(4, 4, incl, reverse, func(key, _ int) bool {
			out = append(out, key)
			return true
		})
		require.NoError(t, err)
		return out
	}
	require.Equal(t, []int{4}, collect("both", false))
	require.Equal(t, []int{4}, collect("both", true))
	for _, incl := range []string{"low", "high", "none"} {
		require.Equal(t, []int{}, collect(incl, false), incl)
		require.Equal(t, []int{}, collect(incl, true), incl)
	}
}

func TestRangeOpen(t *testing.T) {
	llrb := NewBytes[int]("open", Defaultsettings())
	defer llrb.Destroy()

	for i := 0; i < 26; i++ {
		llrb.Upsert([]byte{byte('a' + i)}, i)
	}

	collect := func(lo, hi []byte, incl string, reverse bool) string {
		out := []byte{}
		llrb.Range(lo, hi, incl, reverse, func(key []byte, _ int) bool {
			out = append(out, key...)
			return true
		})
		return string(out)
	}

	require.Equal(t, "abcdefghijklmnopqrstuvwxyz", collect(nil, nil, "both", false))
	require.Equal(t, "zyxwvutsrqponmlkjihgfedcba", collect(nil, nil, "none", true))
	require.Equal(t, "abcde", collect(nil, []byte("e"), "both", false))
	require.Equal(t, "abcd", collect(nil, []byte("e"), "low", false))
	require.Equal(t, "wxyz", collect([]byte("w"), nil, "low", false))
	require.Equal(t, "zyx", collect([]byte("w"), nil, "high", true))
}

func TestRangeStop(t *testing.T) {
	llrb, _ := makeevens(t, 50)
	defer llrb.Destroy()

	for _, reverse := range []bool{false, true} {
		count := 0
		llrb.Range(0, 100, "both", reverse, func(key, _ int) bool {
			count++
			return count < 5
		})
		if count != 5 {
			t.Errorf("expected %v, got %v", 5, count)
		}
	}
}

func TestAll(t *testing.T) {
	llrb, keys := makeevens(t, 100)
	defer llrb.Destroy()

	seq := llrb.All()
	for n := 0; n < 2; n++ { // restartable
		outkeys := []int{}
		for key, value := range seq {
			if value*2 != key {
				t.Errorf("unexpected value %v for %v", value, key)
			}
			outkeys = append(outkeys, key)
		}
		require.Equal(t, keys, outkeys)
	}

	count := 0
	for range seq {
		count++
		if count == 10 {
			break
		}
	}
	require.Equal(t, 10, count)
}
