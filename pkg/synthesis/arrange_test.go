package synthesis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dgameiro/floorgen/pkg/unitmix"
)

func arrangeFixture() ([]unitmix.TypeSpec, map[string]int) {
	types := []unitmix.TypeSpec{
		makeType("s", 50, 3, 20, 1, 1),
		makeType("m", 80, 3, 20, 1, 1),
		makeType("l", 110, 3, 20, 1, 1),
		makeType("xl", 140, 3, 20, 1, 1),
	}
	return types, unitmix.ByKey(types)
}

func TestArrange_Patterns(t *testing.T) {
	types, index := arrangeFixture()
	seg := span(0, 38, 10)
	keys := []string{"s", "m", "l", "xl"}
	widths := []float64{5, 8, 11, 14}

	tests := []struct {
		pattern Pattern
		want    []string
	}{
		{PatternDescending, []string{"xl", "l", "m", "s"}},
		{PatternAscending, []string{"s", "m", "l", "xl"}},
		{PatternValley, []string{"xl", "m", "s", "l"}},
		{PatternAlternating, []string{"xl", "s", "l", "m"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			gotKeys, gotWidths, warns := Arrange(seg, keys, widths, types, index, tt.pattern)
			require.Empty(t, warns)
			require.Equal(t, tt.want, gotKeys)
			// Widths travel with their keys.
			for i, k := range gotKeys {
				require.Equal(t, widthOf(k), gotWidths[i])
			}
		})
	}
}

func widthOf(key string) float64 {
	switch key {
	case "s":
		return 5
	case "m":
		return 8
	case "l":
		return 11
	default:
		return 14
	}
}

func TestArrange_ValleyPutsWidestAtEdges(t *testing.T) {
	types, index := arrangeFixture()
	seg := span(0, 38, 10)
	seg.LeftIsEnd = true
	seg.RightIsEnd = true
	keys, widths, _ := Arrange(seg, []string{"s", "m", "l", "xl"},
		[]float64{5, 8, 11, 14}, types, index, PatternValley)

	require.Equal(t, "xl", keys[0], "widest must sit on the left edge")
	last := keys[len(keys)-1]
	require.Equal(t, "l", last, "second widest must sit on the right edge")
	require.Equal(t, 14.0, widths[0])
}

func TestArrange_CornerSwap(t *testing.T) {
	types, index := arrangeFixture()
	// Make the widest type corner-ineligible; it must be swapped off the
	// end slot in a descending arrangement.
	for i := range types {
		if types[i].Key == "xl" {
			types[i].Advanced.CornerEligible = false
		}
	}
	seg := span(0, 38, 10)
	seg.LeftIsEnd = true

	keys, _, warns := Arrange(seg, []string{"s", "m", "l", "xl"},
		[]float64{5, 8, 11, 14}, types, index, PatternDescending)
	require.Empty(t, warns)
	require.NotEqual(t, "xl", keys[0], "corner-ineligible type must leave the end slot")
	require.Equal(t, "l", keys[0], "nearest eligible neighbor takes the corner")
}

func TestArrange_NoEligibleCornerWarns(t *testing.T) {
	types, index := arrangeFixture()
	for i := range types {
		types[i].Advanced.CornerEligible = false
	}
	seg := span(0, 38, 10)
	seg.LeftIsEnd = true

	_, _, warns := Arrange(seg, []string{"s", "m"}, []float64{5, 8}, types, index, PatternDescending)
	require.Len(t, warns, 1)
	require.Contains(t, warns[0], "no corner-eligible type")
}

func TestArrange_Empty(t *testing.T) {
	types, index := arrangeFixture()
	keys, widths, warns := Arrange(span(0, 10, 10), nil, nil, types, index, PatternValley)
	require.Empty(t, keys)
	require.Empty(t, widths)
	require.Empty(t, warns)
}
