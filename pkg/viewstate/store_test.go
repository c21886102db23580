package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() ItineraryView {
	return ItineraryView{
		ItineraryText: "Day 1: Arrival",
		Destination:   "Paris, France",
		Budget:        3000,
	}
}

func TestSetDataClearsLoadingAndError(t *testing.T) {
	store := NewSlotStore()

	store.SetLoading("user-1")
	store.SetError("user-1", "boom")
	store.SetData("user-1", sampleView())

	state, ok := store.Get("user-1")
	require.True(t, ok)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.View)
	assert.Equal(t, "Paris, France", state.View.Destination)
}

func TestSetLoadingClearsError(t *testing.T) {
	store := NewSlotStore()

	store.SetError("user-1", "boom")
	store.SetLoading("user-1")

	state, ok := store.Get("user-1")
	require.True(t, ok)
	assert.True(t, state.IsLoading)
	assert.Empty(t, state.Error)
}

func TestSetErrorClearsLoading(t *testing.T) {
	store := NewSlotStore()

	store.SetLoading("user-1")
	store.SetError("user-1", "generation failed")

	state, ok := store.Get("user-1")
	require.True(t, ok)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "generation failed", state.Error)
}

func TestClearResetsSlot(t *testing.T) {
	store := NewSlotStore()

	store.SetData("user-1", sampleView())
	store.Clear("user-1")

	_, ok := store.Get("user-1")
	assert.False(t, ok)
}

func TestLastWriterWins(t *testing.T) {
	store := NewSlotStore()

	store.SetData("user-1", sampleView())
	replacement := sampleView()
	replacement.Destination = "Tokyo, Japan"
	store.SetData("user-1", replacement)

	state, ok := store.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, "Tokyo, Japan", state.View.Destination)
}

func TestSlotsAreIndependentPerSession(t *testing.T) {
	store := NewSlotStore()

	store.SetData("user-1", sampleView())
	store.SetLoading("user-2")

	one, ok := store.Get("user-1")
	require.True(t, ok)
	assert.False(t, one.IsLoading)

	two, ok := store.Get("user-2")
	require.True(t, ok)
	assert.True(t, two.IsLoading)
}
