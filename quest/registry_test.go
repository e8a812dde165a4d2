package quest_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/ringsum/quest"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	var names []string
	for _, e := range quest.Registry() {
		require.NotNil(t, e.Run, e.Name)
		names = append(names, e.Name)
	}

	want := []string{"q1_1", "q1_2", "q1_3", "q10_1", "q17_1", "q17_2"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Registry mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	e, err := quest.Lookup(17, 2)
	require.NoError(t, err)
	require.Equal(t, "q17_2", e.Name)

	e, err = quest.LookupName("q10_1")
	require.NoError(t, err)
	require.Equal(t, 10, e.Quest)
	require.Equal(t, 1, e.Part)

	_, err = quest.Lookup(2, 1)
	require.ErrorIs(t, err, quest.ErrUnknownEntry)

	_, err = quest.LookupName("q99_1")
	require.ErrorIs(t, err, quest.ErrUnknownEntry)
}
