package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(images []Image) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.ID
	}
	return out
}

func TestNewCollection_SortsByOrder(t *testing.T) {
	c := NewCollection([]Image{
		{ID: "c", Order: 3},
		{ID: "a", Order: 1},
		{ID: "b", Order: 2},
	})

	assert.Equal(t, []string{"a", "b", "c"}, ids(c.All()))
	assert.Equal(t, 3, c.Len())
}

func TestNewCollection_StableOnTies(t *testing.T) {
	c := NewCollection([]Image{
		{ID: "x", Order: 2},
		{ID: "first", Order: 1},
		{ID: "y", Order: 2},
		{ID: "second", Order: 1},
	})

	assert.Equal(t, []string{"first", "second", "x", "y"}, ids(c.All()))
}

func TestNewCollection_DoesNotAliasInput(t *testing.T) {
	input := []Image{{ID: "b", Order: 2}, {ID: "a", Order: 1}}
	c := NewCollection(input)

	input[0].ID = "mutated"
	assert.Equal(t, []string{"a", "b"}, ids(c.All()))

	all := c.All()
	all[0].ID = "changed"
	first, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, "a", first.ID)
}

func TestCollection_At(t *testing.T) {
	c := NewCollection([]Image{{ID: "only"}})

	img, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, "only", img.ID)

	_, ok = c.At(1)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)
}

func TestCollection_Prefix(t *testing.T) {
	c := NewCollection([]Image{
		{ID: "a", Order: 1}, {ID: "b", Order: 2}, {ID: "c", Order: 3},
		{ID: "d", Order: 4}, {ID: "e", Order: 5},
	})

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"bounded", 4, []string{"a", "b", "c", "d"}},
		{"larger than collection", 10, []string{"a", "b", "c", "d", "e"}},
		{"zero means all", 0, []string{"a", "b", "c", "d", "e"}},
		{"one", 1, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Prefix(tt.n)))
		})
	}
}

func TestCollection_CanNavigate(t *testing.T) {
	assert.False(t, NewCollection(nil).CanNavigate())
	assert.False(t, NewCollection([]Image{{ID: "a"}}).CanNavigate())
	assert.True(t, NewCollection([]Image{{ID: "a"}, {ID: "b"}}).CanNavigate())
}
