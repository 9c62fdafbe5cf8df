package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutro/termindex/internal/terms"
)

func TestBuilderRecord(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Record(1, terms.NewSet("cat")))
	require.NoError(t, b.Record(2, terms.NewSet("cat", "dog")))

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []int{1, 2}, b.Pages("cat"))
	assert.Equal(t, []int{2}, b.Pages("dog"))
	assert.Equal(t, []int{}, b.Pages("bird"))
}

func TestBuilderRecordEmptySet(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Record(1, terms.NewSet()))
	require.NoError(t, b.Record(1, nil))

	idx := b.Finalize()
	assert.Equal(t, 0, idx.Len())
}

func TestBuilderRejectsInvalidPage(t *testing.T) {
	b := NewBuilder()
	assert.Error(t, b.Record(0, terms.NewSet("cat")))
	assert.Error(t, b.Record(-3, terms.NewSet("cat")))
	assert.Equal(t, 0, b.Len())
}

func TestBuilderRecordAfterFinalize(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Record(1, terms.NewSet("cat")))
	b.Finalize()

	err := b.Record(2, terms.NewSet("dog"))
	assert.ErrorIs(t, err, ErrFinalized)
}

func TestBuilderOrderIndependent(t *testing.T) {
	pages := map[int]terms.Set{
		1: terms.NewSet("alpha", "beta"),
		2: terms.NewSet("beta", "gamma"),
		3: terms.NewSet("alpha", "delta"),
		4: terms.NewSet(),
	}

	inOrder := NewBuilder()
	for _, p := range []int{1, 2, 3, 4} {
		require.NoError(t, inOrder.Record(p, pages[p]))
	}
	reversed := NewBuilder()
	for _, p := range []int{4, 3, 2, 1} {
		require.NoError(t, reversed.Record(p, pages[p]))
	}
	shuffled := NewBuilder()
	for _, p := range []int{3, 1, 4, 2} {
		require.NoError(t, shuffled.Record(p, pages[p]))
	}

	want := inOrder.Finalize()
	for _, got := range []*Index{reversed.Finalize(), shuffled.Finalize()} {
		assert.Equal(t, want.Terms(), got.Terms())
		for _, term := range want.Terms() {
			assert.Equal(t, want.Pages(term), got.Pages(term), "pages for %q", term)
		}
		assert.Equal(t, Render(want, DefaultRenderOptions()), Render(got, DefaultRenderOptions()))
	}
}

func TestBuilderRepeatedPage(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Record(3, terms.NewSet("cat")))
	require.NoError(t, b.Record(3, terms.NewSet("cat")))
	assert.Equal(t, []int{3}, b.Pages("cat"))
}

func TestIndexIsReadOnly(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Record(1, terms.NewSet("cat", "ant")))
	idx := b.Finalize()

	ts := idx.Terms()
	require.Equal(t, []string{"ant", "cat"}, ts)
	ts[0] = "zzz"
	assert.Equal(t, []string{"ant", "cat"}, idx.Terms())

	pages := idx.Pages("cat")
	pages[0] = 99
	assert.Equal(t, []int{1}, idx.Pages("cat"))
	assert.Nil(t, idx.Pages("missing"))
}
