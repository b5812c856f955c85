package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-intrusive/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/emirpasic/gods, https://github.com/google/btree,
// and https://github.com/petar/GoLLRB over the same key sequence.
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap are
// included in the lookup benchmarks as unordered baselines, i.e. what exact-match
// lookups cost once ordering is given up.
const benchmarkItemCount = 1 << 16

var (
	rg   = *rand.New(rand.NewSource(0))
	keys = rg.Perm(benchmarkItemCount)
)

func setupIntrusive(b *testing.B) *Trees.AVLTree[int] {
	b.Helper()
	u := Trees.NewOrdered[int]()
	for _, k := range keys {
		u.Insert(&Trees.Node[int]{Val: k})
	}
	return u
}

func setupGodsAVL(b *testing.B) *avltree.Tree {
	b.Helper()
	u := avltree.NewWithIntComparator()
	for _, k := range keys {
		u.Put(k, k)
	}
	return u
}

func setupGodsRB(b *testing.B) *redblacktree.Tree {
	b.Helper()
	u := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		u.Put(k, k)
	}
	return u
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	u := btree.NewOrderedG[int](32)
	for _, k := range keys {
		u.ReplaceOrInsert(k)
	}
	return u
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	u := llrb.New()
	for _, k := range keys {
		u.ReplaceOrInsert(llrb.Int(k))
	}
	return u
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	u := haxmap.New[int, int]()
	for _, k := range keys {
		u.Set(k, k)
	}
	return u
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	u := hashmap.New[int, int]()
	for _, k := range keys {
		u.Set(k, k)
	}
	return u
}

func BenchmarkInsertIntrusive(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		setupIntrusive(b)
	}
}

func BenchmarkInsertGodsAVL(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		setupGodsAVL(b)
	}
}

func BenchmarkInsertGodsRB(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		setupGodsRB(b)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		setupBTree(b)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		setupLLRB(b)
	}
}

var sideEff int

func BenchmarkGetIntrusive(b *testing.B) {
	u := setupIntrusive(b)
	q := Trees.Node[int]{}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range keys {
			q.Val = k
			sideEff = u.Get(&q).Val
		}
	}
}

func BenchmarkGetGodsAVL(b *testing.B) {
	u := setupGodsAVL(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range keys {
			v, _ := u.Get(k)
			sideEff = v.(int)
		}
	}
}

func BenchmarkGetGodsRB(b *testing.B) {
	u := setupGodsRB(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range keys {
			v, _ := u.Get(k)
			sideEff = v.(int)
		}
	}
}

func BenchmarkGetBTree(b *testing.B) {
	u := setupBTree(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range keys {
			sideEff, _ = u.Get(k)
		}
	}
}

func BenchmarkGetLLRB(b *testing.B) {
	u := setupLLRB(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range keys {
			sideEff = int(u.Get(llrb.Int(k)).(llrb.Int))
		}
	}
}

func BenchmarkGetHaxMap(b *testing.B) {
	u := setupHaxMap(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range keys {
			sideEff, _ = u.Get(k)
		}
	}
}

func BenchmarkGetHashMap(b *testing.B) {
	u := setupHashMap(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range keys {
			sideEff, _ = u.Get(k)
		}
	}
}

func BenchmarkRemoveIntrusive(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		b.StopTimer()
		u := setupIntrusive(b)
		q := Trees.Node[int]{}
		b.StartTimer()
		for _, k := range keys {
			q.Val = k
			u.Remove(&q)
		}
	}
}

func BenchmarkRemoveGodsAVL(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		b.StopTimer()
		u := setupGodsAVL(b)
		b.StartTimer()
		for _, k := range keys {
			u.Remove(k)
		}
	}
}

func BenchmarkRemoveGodsRB(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		b.StopTimer()
		u := setupGodsRB(b)
		b.StartTimer()
		for _, k := range keys {
			u.Remove(k)
		}
	}
}

func BenchmarkRemoveBTree(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		b.StopTimer()
		u := setupBTree(b)
		b.StartTimer()
		for _, k := range keys {
			u.Delete(k)
		}
	}
}

func BenchmarkRemoveLLRB(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		b.StopTimer()
		u := setupLLRB(b)
		b.StartTimer()
		for _, k := range keys {
			u.Delete(llrb.Int(k))
		}
	}
}
