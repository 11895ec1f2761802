package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvring/sequence"
)

// item is a reference-typed payload; tests compare pointers for identity.
type item struct {
	name string
}

// newItems returns n distinct items named "a", "b", ….
func newItems(n int) []*item {
	out := make([]*item, n)
	for i := range out {
		out[i] = &item{name: string(rune('a' + i))}
	}

	return out
}

// sinkRecorder collects every (op, err) pair reported to an ErrorSink.
type sinkRecorder struct {
	ops  []string
	errs []error
}

func (r *sinkRecorder) sink(op string, err error) {
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
}

func TestNew_Defaults(t *testing.T) {
	s := sequence.New[*item]()
	assert.Equal(t, sequence.DefaultCapacity, s.Capacity())
	assert.Equal(t, 0, s.Size())
	assert.True(t, s.IsEmpty())
	assert.True(t, s.Growable())
	assert.Equal(t, sequence.DefaultGrowthFactor, s.GrowthFactor())
}

func TestNew_InvalidOptionsFallBackToDefaults(t *testing.T) {
	s := sequence.New[int](sequence.WithCapacity(0), sequence.WithGrowthFactor(1))
	assert.Equal(t, sequence.DefaultCapacity, s.Capacity())
	assert.Equal(t, sequence.DefaultGrowthFactor, s.GrowthFactor())

	s = sequence.New[int](sequence.WithCapacity(-4), sequence.WithGrowthFactor(-3))
	assert.Equal(t, sequence.DefaultCapacity, s.Capacity())
	assert.Equal(t, sequence.DefaultGrowthFactor, s.GrowthFactor())
}

func TestAdd_FixedCapacityKeepsOrder(t *testing.T) {
	const n = 6
	items := newItems(n)
	s := sequence.New[*item](sequence.WithFixedCapacity(n))

	for i, it := range items {
		require.NoError(t, s.Add(it))
		assert.Equal(t, i+1, s.Size())
	}
	for i, it := range items {
		got, err := s.Get(i)
		require.NoError(t, err)
		assert.Same(t, it, got)
	}
}

func TestAdd_GrowthPreservesEntries(t *testing.T) {
	items := newItems(5)
	s := sequence.New[*item](sequence.WithCapacity(1), sequence.WithGrowthFactor(2))

	wantCaps := []int{1, 2, 4, 4, 8}
	for i, it := range items {
		require.NoError(t, s.Add(it))
		assert.Equal(t, wantCaps[i], s.Capacity(), "capacity after add #%d", i+1)
	}
	assert.Equal(t, 8, s.Capacity())
	for i, it := range items {
		got, err := s.Get(i)
		require.NoError(t, err)
		assert.Same(t, it, got)
	}
}

func TestAdd_GrowthFactorThree(t *testing.T) {
	s := sequence.New[int](sequence.WithCapacity(2), sequence.WithGrowthFactor(3))
	for i := 0; i < 7; i++ {
		require.NoError(t, s.Add(i))
	}
	assert.Equal(t, 18, s.Capacity())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.Values())
}

func TestAdd_CapacityExceeded(t *testing.T) {
	rec := &sinkRecorder{}
	items := newItems(3)
	s := sequence.New[*item](
		sequence.WithFixedCapacity(2),
		sequence.WithErrorSink(rec.sink),
	)
	require.NoError(t, s.Add(items[0]))
	require.NoError(t, s.Add(items[1]))

	err := s.Add(items[2])
	assert.ErrorIs(t, err, sequence.ErrCapacityExceeded)
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 2, s.Capacity())
	assert.Equal(t, []*item{items[0], items[1]}, s.Values())

	require.Len(t, rec.errs, 1)
	assert.Equal(t, "Add", rec.ops[0])
	assert.ErrorIs(t, rec.errs[0], err)
	assert.Equal(t, sequence.KindCapacityExceeded, sequence.KindOf(rec.errs[0]))
}

func TestGetSet_Bounds(t *testing.T) {
	rec := &sinkRecorder{}
	s := sequence.New[int](sequence.WithErrorSink(rec.sink))
	require.NoError(t, s.Add(7))

	_, err := s.Get(-1)
	assert.ErrorIs(t, err, sequence.ErrNegativeIndex)
	_, err = s.Get(1)
	assert.ErrorIs(t, err, sequence.ErrIndexOutOfBounds)

	assert.ErrorIs(t, s.Set(-2, 1), sequence.ErrNegativeIndex)
	assert.ErrorIs(t, s.Set(1, 1), sequence.ErrIndexOutOfBounds)

	require.NoError(t, s.Set(0, 9))
	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
	assert.Equal(t, 1, s.Size(), "Set must not grow")

	assert.Equal(t, []string{"Get", "Get", "Set", "Set"}, rec.ops)
}

func TestInsert_ShiftsRight(t *testing.T) {
	s := sequence.New[string](sequence.WithCapacity(2))
	for _, v := range []string{"a", "c", "e"} {
		require.NoError(t, s.Add(v))
	}

	require.NoError(t, s.Insert(1, "b"))
	require.NoError(t, s.Insert(3, "d"))
	require.NoError(t, s.Insert(0, "_"))
	require.NoError(t, s.Insert(s.Size(), "f"))
	assert.Equal(t, []string{"_", "a", "b", "c", "d", "e", "f"}, s.Values())

	assert.ErrorIs(t, s.Insert(-1, "x"), sequence.ErrNegativeIndex)
	assert.ErrorIs(t, s.Insert(s.Size()+1, "x"), sequence.ErrIndexOutOfBounds)
}

func TestInsert_FixedFull(t *testing.T) {
	s := sequence.New[int](sequence.WithFixedCapacity(2))
	require.NoError(t, s.Add(1))
	require.NoError(t, s.Add(2))

	assert.ErrorIs(t, s.Insert(0, 0), sequence.ErrCapacityExceeded)
	assert.Equal(t, []int{1, 2}, s.Values())
}

func TestRemoveAt_PreservesRelativeOrder(t *testing.T) {
	items := newItems(6)
	s := sequence.New[*item]()
	for _, it := range items {
		require.NoError(t, s.Add(it))
	}
	before := s.Values()

	removed, err := s.RemoveAt(2)
	require.NoError(t, err)
	assert.Same(t, items[2], removed)

	after := s.Values()
	require.Len(t, after, len(before)-1)
	// Every untouched entry keeps its relative order.
	j := 0
	for _, it := range before {
		if it == items[2] {
			continue
		}
		assert.Same(t, it, after[j])
		j++
	}
	assert.Equal(t, sequence.DefaultCapacity, s.Capacity(), "capacity must not shrink by default")

	_, err = s.RemoveAt(-1)
	assert.ErrorIs(t, err, sequence.ErrNegativeIndex)
	_, err = s.RemoveAt(s.Size())
	assert.ErrorIs(t, err, sequence.ErrIndexOutOfBounds)
}

func TestInsertRemove_RoundTrip(t *testing.T) {
	s := sequence.New[int](sequence.WithCapacity(3))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Add(i*10))
	}
	before := s.Values()

	require.NoError(t, s.Insert(2, 99))
	got, err := s.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 99, got)
	assert.Equal(t, before, s.Values())
}

func TestRemove_ByIdentity(t *testing.T) {
	rec := &sinkRecorder{}
	items := newItems(3)
	s := sequence.New[*item](sequence.WithErrorSink(rec.sink))
	for _, it := range items {
		require.NoError(t, s.Add(it))
	}

	require.NoError(t, s.Remove(items[1]))
	assert.Equal(t, []*item{items[0], items[2]}, s.Values())

	twin := &item{name: items[0].name}
	assert.ErrorIs(t, s.Remove(twin), sequence.ErrItemNotFound)
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []string{"Remove"}, rec.ops)
}

func TestIndexOf_CustomEquality(t *testing.T) {
	items := newItems(3)
	s := sequence.New[*item]()
	for _, it := range items {
		require.NoError(t, s.Add(it))
	}
	twin := &item{name: items[2].name}

	idx, err := s.IndexOf(twin, nil)
	assert.ErrorIs(t, err, sequence.ErrItemNotFound)
	assert.Equal(t, sequence.NotFound, idx)

	byName := func(a, b *item) bool { return a.name == b.name }
	idx, err = s.IndexOf(twin, byName)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = s.IndexOf(items[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestIndexFunc(t *testing.T) {
	s := sequence.New[int]()
	for _, v := range []int{3, 8, 12, 8} {
		require.NoError(t, s.Add(v))
	}
	idx, err := s.IndexFunc(func(v int) bool { return v > 5 })
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = s.IndexFunc(func(v int) bool { return v > 100 })
	assert.ErrorIs(t, err, sequence.ErrItemNotFound)
	assert.Equal(t, sequence.NotFound, idx)
	assert.True(t, s.Contains(12))
	assert.False(t, s.Contains(4))

	idx, err = s.IndexFunc(nil)
	assert.ErrorIs(t, err, sequence.ErrItemNotFound)
	assert.Equal(t, sequence.NotFound, idx)
}

func TestNew_NilOptionIgnored(t *testing.T) {
	s := sequence.New[int](nil, sequence.WithFixedCapacity(3), nil)
	assert.Equal(t, 3, s.Capacity())
	assert.False(t, s.Growable())
}

func TestStack_PushPopPeek(t *testing.T) {
	s := sequence.New[int](sequence.WithCapacity(1))
	for i := 1; i <= 4; i++ {
		require.NoError(t, s.Push(i))
	}
	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 4, top)

	for want := 4; want >= 1; want-- {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = s.Pop()
	assert.ErrorIs(t, err, sequence.ErrIndexOutOfBounds)
	_, err = s.Peek()
	assert.ErrorIs(t, err, sequence.ErrIndexOutOfBounds)
}

func TestShrinkable_ReclaimsCapacity(t *testing.T) {
	s := sequence.New[int](sequence.WithCapacity(2), sequence.WithShrinkable())
	for i := 0; i < 8; i++ {
		require.NoError(t, s.Add(i))
	}
	require.Equal(t, 8, s.Capacity())

	for s.Size() > 3 {
		_, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, 8, s.Capacity(), "no shrink while size=%d", s.Size())
	}

	// size 2: 2*2*2 <= 8, capacity steps down by the growth factor.
	_, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Capacity())
	assert.Equal(t, []int{0, 1}, s.Values())

	// size 1: 1*2*2 <= 4, capacity reaches the initial value.
	_, err = s.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Capacity())
	assert.Equal(t, []int{1}, s.Values())

	_, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Capacity(), "capacity must not drop below the initial value")
}

func TestCopyRange(t *testing.T) {
	src := sequence.New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, src.Add(i))
	}
	dst := sequence.New[int]()
	require.NoError(t, src.CopyRange(dst, 3, 5))
	require.NoError(t, src.CopyRange(dst, 0, 3))
	assert.Equal(t, []int{3, 4, 0, 1, 2}, dst.Values())

	assert.ErrorIs(t, src.CopyRange(dst, -1, 2), sequence.ErrNegativeIndex)
	assert.ErrorIs(t, src.CopyRange(dst, 3, 2), sequence.ErrIndexOutOfBounds)
	assert.ErrorIs(t, src.CopyRange(dst, 0, 6), sequence.ErrIndexOutOfBounds)

	small := sequence.New[int](sequence.WithFixedCapacity(2))
	assert.ErrorIs(t, src.CopyRange(small, 0, 5), sequence.ErrCapacityExceeded)
	assert.Equal(t, []int{0, 1}, small.Values())
}

func TestEachAndClear(t *testing.T) {
	s := sequence.New[string]()
	for _, v := range []string{"x", "y", "z"} {
		require.NoError(t, s.Add(v))
	}
	var seen []string
	s.Each(func(i int, v string) bool {
		seen = append(seen, v)
		return i < 1
	})
	assert.Equal(t, []string{"x", "y"}, seen)

	capBefore := s.Capacity()
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, capBefore, s.Capacity())
	_, err := s.Get(0)
	assert.ErrorIs(t, err, sequence.ErrIndexOutOfBounds)
}

func TestInvalidHandle(t *testing.T) {
	var nilSeq *sequence.Sequence[int]
	assert.Equal(t, sequence.InvalidSize, nilSeq.Size())
	assert.Equal(t, sequence.InvalidSize, nilSeq.Capacity())
	assert.True(t, nilSeq.IsEmpty())
	_, err := nilSeq.Get(0)
	assert.ErrorIs(t, err, sequence.ErrInvalidHandle)
	assert.ErrorIs(t, nilSeq.Add(1), sequence.ErrInvalidHandle)
	assert.Nil(t, nilSeq.Values())
	nilSeq.Clear()
	nilSeq.Destroy()

	rec := &sinkRecorder{}
	s := sequence.New[int](sequence.WithErrorSink(rec.sink))
	require.NoError(t, s.Add(1))
	s.Destroy()

	assert.Equal(t, sequence.InvalidSize, s.Size())
	assert.True(t, s.IsEmpty())
	v, err := s.Get(0)
	assert.ErrorIs(t, err, sequence.ErrInvalidHandle)
	assert.Zero(t, v)
	assert.ErrorIs(t, s.Add(2), sequence.ErrInvalidHandle)
	assert.ErrorIs(t, s.Insert(0, 2), sequence.ErrInvalidHandle)
	assert.ErrorIs(t, s.Remove(1), sequence.ErrInvalidHandle)
	idx, err := s.IndexOf(1, nil)
	assert.ErrorIs(t, err, sequence.ErrInvalidHandle)
	assert.Equal(t, sequence.NotFound, idx)
	assert.Len(t, rec.errs, 5)
	for _, e := range rec.errs {
		assert.Equal(t, sequence.KindInvalidHandle, sequence.KindOf(e))
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want sequence.Kind
	}{
		{nil, sequence.KindNone},
		{sequence.ErrInvalidHandle, sequence.KindInvalidHandle},
		{sequence.ErrCapacityExceeded, sequence.KindCapacityExceeded},
		{sequence.ErrNegativeIndex, sequence.KindNegativeIndex},
		{sequence.ErrIndexOutOfBounds, sequence.KindIndexOutOfBounds},
		{sequence.ErrItemNotFound, sequence.KindItemNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sequence.KindOf(tc.err))
	}
	assert.Equal(t, "CapacityExceeded", sequence.KindCapacityExceeded.String())
	assert.Equal(t, "None", sequence.KindNone.String())
}
