package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockstep/views"
)

func deref[T any](row []*T) []T {
	out := make([]T, len(row))
	for k, p := range row {
		out[k] = *p
	}
	return out
}

func TestZipN(t *testing.T) {
	z := views.ZipN(
		views.FromSlice([]int{1, 2, 3, 4}),
		views.FromSlice([]int{10, 20, 30}),
		views.FromSlice([]int{100, 200, 300, 400, 500}),
	)
	assert.Equal(t, 3, z.Arity())
	assert.Equal(t, 3, z.Size())

	var rows [][]int
	for row := range z.All() {
		rows = append(rows, deref(row))
	}
	assert.Equal(t, [][]int{{1, 10, 100}, {2, 20, 200}, {3, 30, 300}}, rows)
}

func TestZipN_Single(t *testing.T) {
	z := views.ZipN(views.FromSlice([]string{"a", "b"}))
	var got []string
	for row := range z.All() {
		require.Len(t, row, 1)
		got = append(got, *row[0])
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestZipN_EmptyMember(t *testing.T) {
	z := views.ZipN(views.FromSlice([]int{1, 2}), views.FromSlice([]int{}))
	assert.Equal(t, 0, z.Size())
	assert.True(t, z.Done(z.Begin(), z.End()))
	assert.Equal(t, 1, z.Reached(z.Begin()))
}

func TestZipN_CursorAdvancesInPlace(t *testing.T) {
	z := views.ZipN(views.FromSlice([]int{1, 2}), views.FromSlice([]int{3, 4, 5}))
	c := z.Begin()
	next := z.Next(c)
	assert.Equal(t, views.CursorN[int]{1, 1}, c)
	assert.Equal(t, c, next)
	assert.Equal(t, views.EndN[int]{2, 3}, z.End())
}

func TestZipN_Aliasing(t *testing.T) {
	a := []int{1, 2}
	b := []int{3, 4, 5}
	for row := range views.ZipN(views.FromSlice(a), views.FromSlice(b)).All() {
		*row[0], *row[1] = *row[1], *row[0]
	}
	assert.Equal(t, []int{3, 4}, a)
	assert.Equal(t, []int{1, 2, 5}, b)
}

func TestZipNWith_Empty(t *testing.T) {
	assert.Panics(t, func() {
		views.ZipNWith[int, int](nil)
	})
}

func TestZipNWith_CopiesMembers(t *testing.T) {
	members := []views.View[int, int]{views.FromSlice([]int{1}), views.FromSlice([]int{2})}
	z := views.ZipNWith(members)
	members[1] = views.FromSlice([]int{})
	assert.Equal(t, 1, z.Size(), "the member set is fixed when the zip is built")
}
