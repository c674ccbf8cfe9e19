package Trees

import (
	"math/bits"
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/emirpasic/gods/trees/redblacktree"
)

var rg = rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 80000
)

func TestBSTree_Insert(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert of %v returned %v, already present: %v", b, c, in)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for v := range tree.All() {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if err := tree.Validate(); err != nil {
		t.Error(err)
	}
}

func TestBSTree_Remove(t *testing.T) {
	tree := New[int]()
	content := haxmap.New[int, struct{}]()
	if tree.Remove(0) != false {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content.Set(a[i], struct{}{})
	}
	for i := range rg.Intn(len(a)) {
		_, in := content.Get(a[i])
		size := tree.Size()
		if b := tree.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		} else if b && tree.Size() != size-1 {
			t.Errorf("size went from %d to %d after deleting %v", size, tree.Size(), a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		if tree.Has(a[i]) {
			t.Errorf("tree still has deleted key %v", a[i])
		}
		content.Del(a[i])
	}
	if uintptr(tree.Size()) != content.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), content.Len())
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for v := range tree.All() {
		if _, in := content.Get(v); !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if err := tree.Validate(); err != nil {
		t.Error(err)
	}
}

// TestBSTree_InsertRemove interleaves the two and compares against a red black tree.
func TestBSTree_InsertRemove(t *testing.T) {
	tree := From(rg.Perm(tAddN / 4))
	oracle := redblacktree.NewWithIntComparator()
	for _, v := range tree.Keys() {
		oracle.Put(v, struct{}{})
	}
	for i := range tAddN {
		v := rg.Intn(tAddN / 2)
		_, in := oracle.Get(v)
		if rg.Intn(2) == 0 {
			if tree.Insert(v) == in {
				t.Fatalf("insert %v disagrees with oracle", v)
			}
			oracle.Put(v, struct{}{})
		} else {
			if tree.Remove(v) != in {
				t.Fatalf("remove %v disagrees with oracle", v)
			}
			oracle.Remove(v)
		}
		if i%1000 == 0 {
			if err := tree.Validate(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if int(tree.Size()) != oracle.Size() {
		t.Fatalf("tree size is %d, want %d", tree.Size(), oracle.Size())
	}
	keys := tree.Keys()
	for i, k := range oracle.Keys() {
		if keys[i] != k.(int) {
			t.Fatalf("key %d is %v, want %v", i, keys[i], k)
		}
	}
	if lo, _ := tree.Minimum(); lo != oracle.Left().Key.(int) {
		t.Errorf("minimum is %v, want %v", lo, oracle.Left().Key)
	}
	if hi, _ := tree.Maximum(); hi != oracle.Right().Key.(int) {
		t.Errorf("maximum is %v, want %v", hi, oracle.Right().Key)
	}
}

func TestBSTree_RemoveAll(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 100, 1000} {
		tree := From(rg.Perm(n))
		for _, v := range rg.Perm(n) {
			if !tree.Remove(v) {
				t.Fatalf("n=%d: failed to delete key %v", n, v)
			}
			if err := tree.Validate(); err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
		}
		if tree.Size() != 0 || tree.root != nil {
			t.Errorf("n=%d: tree isn't empty after deleting everything", n)
		}
	}
}

func TestFrom_Balanced(t *testing.T) {
	for n := range 1100 {
		a := rg.Perm(n)
		tree := From(a)
		if int(tree.Size()) != n {
			t.Fatalf("tree size is %d, want %d", tree.Size(), n)
		}
		// bits.Len(n) == ceil(log2(n+1))
		if h := tree.Height(); h != uint(bits.Len(uint(n))) {
			t.Fatalf("n=%d: height is %d, want %d", n, h, bits.Len(uint(n)))
		}
		if err := tree.Validate(); err != nil {
			t.Fatal(err)
		}
		slices.Sort(a)
		if !slices.Equal(a, tree.Keys()) {
			t.Fatalf("n=%d: keys don't round trip", n)
		}
	}
}

func TestFrom_Duplicates(t *testing.T) {
	a := make([]int, 5000)
	content := make(map[int]struct{})
	for i := range a {
		a[i] = rg.Intn(1000)
		content[a[i]] = struct{}{}
	}
	b := slices.Clone(a)
	tree := From(a)
	if !slices.Equal(a, b) {
		t.Errorf("From modified its input")
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if !slices.IsSorted(tree.Keys()) {
		t.Errorf("keys aren't sorted")
	}
	if err := tree.Validate(); err != nil {
		t.Error(err)
	}
}

func TestOrder(t *testing.T) {
	var got []int
	order([]int{1, 2, 3, 4, 5, 6, 7}, func(v int) { got = append(got, v) })
	if want := []int{4, 2, 1, 3, 6, 5, 7}; !slices.Equal(got, want) {
		t.Errorf("order is %v, want %v", got, want)
	}
	got = got[:0]
	order([]int{1, 2}, func(v int) { got = append(got, v) })
	if want := []int{2, 1}; !slices.Equal(got, want) {
		t.Errorf("order is %v, want %v", got, want)
	}
}

func TestBSTree_InOrder(t *testing.T) {
	tree := From(rg.Perm(tAddN))
	for range 3 {
		var s []int
		f := tree.InOrder()
		for v, ok := f(); ok; v, ok = f() {
			s = append(s, v)
		}
		if _, ok := f(); ok {
			t.Errorf("exhausted iterator became valid again")
		}
		if len(s) != tAddN {
			t.Errorf("sorted size is %d, want %d", len(s), tAddN)
		}
		for i, v := range s {
			if v != i {
				t.Fatalf("sorted[%d] is %d", i, v)
			}
		}
	}
	var s []int
	for v := range tree.All() {
		if v == 100 {
			break
		}
		s = append(s, v)
	}
	if len(s) != 100 {
		t.Errorf("early stop gave %d values, want 100", len(s))
	}
}

func TestBSTree_Depth(t *testing.T) {
	tree := New[int]()
	for i := range 50 {
		tree.Insert(i)
	}
	if tree.Height() != 50 || tree.MaxDepth() != 49 || tree.MinDepth() != 0 {
		t.Errorf("chain has height %d, depths [%d, %d]", tree.Height(), tree.MinDepth(), tree.MaxDepth())
	}
	tree = From(rg.Perm(63))
	if tree.Height() != 6 || tree.MaxDepth() != 5 || tree.MinDepth() != 5 {
		t.Errorf("perfect tree has height %d, depths [%d, %d]", tree.Height(), tree.MinDepth(), tree.MaxDepth())
	}
}
