package llrb

import "testing"
import "math/rand"

import "github.com/stretchr/testify/require"

import "github.com/bnclabs/symtab/dict"

func TestLLRBWithDict(t *testing.T) {
	llrb := NewOrdered[int64, int64]("oracle", Defaultsettings())
	defer llrb.Destroy()
	d := dict.NewOrdered[int64, int64]("oracle")
	defer d.Destroy()

	r := rand.New(rand.NewSource(400))
	for i := 0; i < 20000; i++ {
		key, value := r.Int63n(2000), r.Int63()
		switch op := r.Intn(10); op {
		case 0, 1, 2:
			require.NoError(t, llrb.Upsert(key, value))
			require.NoError(t, d.Upsert(key, value))
		case 3:
			v1, ok1, err1 := llrb.Delete(key)
			v2, ok2, err2 := d.Delete(key)
			require.Equal(t, err2, err1)
			require.Equal(t, ok2, ok1)
			require.Equal(t, v2, v1)
		case 4:
			k1, v1, err1 := llrb.DeleteMin()
			k2, v2, err2 := d.DeleteMin()
			require.Equal(t, err2 == nil, err1 == nil)
			require.Equal(t, k2, k1)
			require.Equal(t, v2, v1)
		case 5:
			k1, v1, err1 := llrb.DeleteMax()
			k2, v2, err2 := d.DeleteMax()
			require.Equal(t, err2 == nil, err1 == nil)
			require.Equal(t, k2, k1)
			require.Equal(t, v2, v1)
		case 6:
			f1, ok1, err1 := llrb.Floor(key)
			f2, ok2, err2 := d.Floor(key)
			require.Equal(t, err2 == nil, err1 == nil)
			require.Equal(t, ok2, ok1)
			require.Equal(t, f2, f1)
			c1, ok1, _ := llrb.Ceiling(key)
			c2, ok2, _ := d.Ceiling(key)
			require.Equal(t, ok2, ok1)
			require.Equal(t, c2, c1)
		case 7:
			require.Equal(t, d.Rank(key), llrb.Rank(key))
			k := r.Int63n(llrb.Count() + 1)
			k1, err1 := llrb.Select(k)
			k2, err2 := d.Select(k)
			require.Equal(t, err2 == nil, err1 == nil)
			require.Equal(t, k2, k1)
		case 8:
			hi := key + r.Int63n(200) - 20
			n1, err1 := llrb.RangeCount(key, hi)
			n2, err2 := d.RangeCount(key, hi)
			require.NoError(t, err1)
			require.NoError(t, err2)
			require.Equal(t, n2, n1)
		case 9:
			v1, ok1 := llrb.Get(key)
			v2, ok2 := d.Get(key)
			require.Equal(t, ok2, ok1)
			require.Equal(t, v2, v1)
		}
		require.Equal(t, d.Count(), llrb.Count())

		if i%1000 == 0 {
			require.NoError(t, llrb.Validate())
		}
	}

	require.NoError(t, llrb.Validate())
	keys1, keys2 := []int64{}, []int64{}
	for key := range llrb.All() {
		keys1 = append(keys1, key)
	}
	for key := range d.All() {
		keys2 = append(keys2, key)
	}
	require.Equal(t, keys2, keys1)
}
