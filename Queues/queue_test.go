package Queues

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayQueue(t *testing.T) {
	for _, c := range []uint{0, 1, 4} {
		q := MakeArrayQueue[int](c)
		require.True(t, q.Empty())
		_, err := q.Pop()
		require.ErrorIs(t, err, ErrEmptyQueue)
		require.Zero(t, q.Peek())

		// wrap around a few times while growing
		next, want := 0, 0
		for round := range 50 {
			for range round%7 + 1 {
				q.Push(next)
				next++
			}
			for range round % 5 {
				if q.Empty() {
					break
				}
				require.Equal(t, want, q.Peek())
				v, err := q.Pop()
				require.NoError(t, err)
				require.Equal(t, want, v)
				want++
			}
			require.Equal(t, uint(next-want), q.Size())
		}
		q.Shrink()
		for !q.Empty() {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
		require.Equal(t, next, want)
		q.Push(1)
		q.Clear()
		require.True(t, q.Empty())
		require.Zero(t, q.Size())
	}
}
