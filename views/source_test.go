package views_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockstep/lists"
	"lockstep/queues"
	"lockstep/views"
)

var (
	_ views.Source[int, int]                 = (*lists.ArrayList[int])(nil)
	_ views.Source[int, lists.Position[int]] = (*lists.LinkedList[int])(nil)
	_ views.Source[int, int]                 = (*queues.ArrayQueue[int])(nil)
)

func TestFromSlice(t *testing.T) {
	v := views.FromSlice([]string{"a", "b", "c"})
	assert.Equal(t, 0, v.Begin())
	assert.Equal(t, 3, v.End())
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(v.Values()))

	empty := views.FromSlice([]string{})
	assert.Equal(t, empty.Begin(), empty.End())
	assert.True(t, empty.Done(empty.Begin(), empty.End()))
	assert.Equal(t, 0, empty.Size())

	var nilSlice []int
	assert.Empty(t, slices.Collect(views.FromSlice(nilSlice).Values()))
}

func TestFromSlice_Aliases(t *testing.T) {
	data := []int{1, 2, 3}
	v := views.FromSlice(data)
	for p := range v.All() {
		*p *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, data)
}

func TestFromArray(t *testing.T) {
	arr := [4]int{4, 3, 2, 1}

	v := views.FromArray(&arr[0], len(arr))
	assert.Equal(t, 4, v.Size())
	assert.Equal(t, []int{4, 3, 2, 1}, slices.Collect(v.Values()))

	*v.Ref(2) = 20
	assert.Equal(t, 20, arr[2])

	// extent shorter than the array
	assert.Equal(t, []int{4, 3}, slices.Collect(views.FromArray(&arr[0], 2).Values()))

	assert.Equal(t, 0, views.FromArray[int](nil, 3).Size())
	assert.Equal(t, 0, views.FromArray(&arr[0], 0).Size())
	assert.Equal(t, 0, views.FromArray(&arr[0], -1).Size())
}

func TestOf_Lists(t *testing.T) {
	al := lists.ArrayListOf(1, 2, 3)
	av := views.Of[int, int](al)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(av.Values()))

	ll := lists.LinkedListOf("x", "y")
	lv := views.Of[string, lists.Position[string]](ll)
	assert.Equal(t, 2, lv.Size())
	assert.Equal(t, ll.Begin(), lv.Begin())
	assert.Equal(t, ll.End(), lv.End())
	assert.Equal(t, []string{"x", "y"}, slices.Collect(lv.Values()))

	q := queues.NewArrayQueue[int](2)
	q.EnqueueAll(7, 8, 9)
	qv := views.Of[int, int](q)
	assert.Equal(t, []int{7, 8, 9}, slices.Collect(qv.Values()))
}

func TestView_EndIsSnapshot(t *testing.T) {
	ll := lists.LinkedListOf(1, 2)
	v := views.Of[int, lists.Position[int]](ll)

	al := lists.ArrayListOf(1, 2)
	av := views.Of[int, int](al)
	al.Add(3)

	assert.Equal(t, 2, av.End(), "end cursor is captured when the view is built")
	assert.Equal(t, 2, av.Size())
	assert.Equal(t, []int{1, 2}, slices.Collect(av.Values()))
	assert.Equal(t, []int{1, 2}, slices.Collect(v.Values()))
}

func TestView_ManualTraversal(t *testing.T) {
	v := views.FromSlice([]int{5, 6, 7})

	var got []int
	end := v.End()
	for c := v.Begin(); !v.Done(c, end); c = v.Next(c) {
		got = append(got, *v.Ref(c))
	}
	require.Len(t, got, 3)
	assert.Equal(t, []int{5, 6, 7}, got)
}

func TestView_AllEarlyStop(t *testing.T) {
	v := views.FromSlice([]int{1, 2, 3, 4})
	var got []int
	for p := range v.All() {
		if *p == 3 {
			break
		}
		got = append(got, *p)
	}
	assert.Equal(t, []int{1, 2}, got)
}
