package Trees

import (
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTreap_AgainstBTree replays the same random operations on a Treap and
// on google/btree and gods' treeset, which must agree on every result.
func TestTreap_AgainstBTree(t *testing.T) {
	tree := NewSeeded[int](11)
	bt := btree.NewOrderedG[int](16)
	ts := treeset.NewWithIntComparator()
	for range 3 * tAddN {
		v := rg.Intn(tAddValRange)
		switch rg.Intn(4) {
		case 0:
			_, want := bt.Delete(v)
			inSet := ts.Contains(v)
			ts.Remove(v)
			require.Equal(t, want, inSet)
			require.Equal(t, want, tree.Remove(v), "remove %d", v)
		case 1:
			b, err := tree.Contains(v)
			require.NoError(t, err)
			require.Equal(t, bt.Has(v), b, "contains %d", v)
		default:
			_, replaced := bt.ReplaceOrInsert(v)
			ts.Add(v)
			require.Equal(t, !replaced, tree.Insert(v), "insert %d", v)
		}
	}
	require.Equal(t, bt.Len(), int(tree.Size()))
	require.Equal(t, ts.Size(), int(tree.Size()))

	want := make([]int, 0, bt.Len())
	bt.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	assert.Equal(t, want, tree.keys())
	assert.False(t, tree.Corrupt())
}

var (
	bAddN = 1 << 15
	sink  bool
)

func BenchmarkTreap_Insert(b *testing.B) {
	vs := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := NewSeeded[int](0)
		for _, v := range vs {
			tree.Insert(v)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	vs := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, v := range vs {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	vs := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, v := range vs {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkTreap_Remove(b *testing.B) {
	vs := rg.Perm(bAddN)
	for range b.N {
		b.StopTimer()
		tree := NewSeeded[int](0)
		for _, v := range vs {
			tree.Insert(v)
		}
		b.StartTimer()
		for _, v := range vs {
			tree.Remove(v)
		}
	}
}

func BenchmarkLLRB_Remove(b *testing.B) {
	vs := rg.Perm(bAddN)
	for range b.N {
		b.StopTimer()
		tree := llrb.New()
		for _, v := range vs {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
		b.StartTimer()
		for _, v := range vs {
			tree.Delete(llrb.Int(v))
		}
	}
}

func BenchmarkTreap_Contains(b *testing.B) {
	tree := NewSeeded[int](0)
	for _, v := range rg.Perm(bAddN) {
		tree.Insert(v * 2)
	}
	qs := rg.Perm(2 * bAddN)
	b.ResetTimer()
	for range b.N {
		for _, q := range qs {
			sink, _ = tree.Contains(q)
		}
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	tree := llrb.New()
	for _, v := range rg.Perm(bAddN) {
		tree.ReplaceOrInsert(llrb.Int(v * 2))
	}
	qs := rg.Perm(2 * bAddN)
	b.ResetTimer()
	for range b.N {
		for _, q := range qs {
			sink = tree.Has(llrb.Int(q))
		}
	}
}
