package options

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// atomGen draws a random atom of a random kind.
func atomGen() *rapid.Generator[Value] {
	return rapid.OneOf(
		rapid.Map(rapid.Float64(), func(f float64) Value { return Number(f) }),
		rapid.Map(rapid.Bool(), func(b bool) Value { return Bool(b) }),
		rapid.Map(rapid.String(), func(s string) Value { return String(s) }),
	)
}

// atomOfKind draws a random atom of the same kind as the sample.
func atomOfKind(kind Kind) *rapid.Generator[Value] {
	switch kind {
	case KindNumber:
		return rapid.Map(rapid.Float64(), func(f float64) Value { return Number(f) })
	case KindBool:
		return rapid.Map(rapid.Bool(), func(b bool) Value { return Bool(b) })
	default:
		return rapid.Map(rapid.String(), func(s string) Value { return String(s) })
	}
}

// optionKeyGen draws keys that can never collide with the reserved
// meta-option vocabulary.
func optionKeyGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-z0-9-]{0,10}`).Filter(func(s string) bool {
		return !containsSeparator(s)
	})
}

func containsSeparator(s string) bool {
	for i := 0; i+3 <= len(s); i++ {
		if s[i:i+3] == DefaultSeparator {
			return true
		}
	}
	return false
}

// flatTreeGen draws a flat map of atoms, which is a valid default layer
// on its own.
func flatTreeGen() *rapid.Generator[Map] {
	return rapid.Map(
		rapid.MapOfN(optionKeyGen(), atomGen(), 1, 8),
		func(m map[string]Value) Map { return Map(m) },
	)
}

func TestPropSingleLayerChainIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := flatTreeGen().Draw(t, "default")
		res, err := NewChainer().Chain(def)
		require.NoError(t, err)
		assert.Equal(t, def, res)
	})
}

func TestPropMatchingAtomOverrideWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := flatTreeGen().Draw(t, "default")

		// Pick one key and override it with an atom of the same kind.
		keys := make([]string, 0, len(def))
		for k := range def {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		key := rapid.SampledFrom(keys).Draw(t, "key")
		newVal := atomOfKind(def[key].Kind()).Draw(t, "override")

		res, err := NewChainer().Chain(Map{key: newVal}, def)
		require.NoError(t, err)
		assert.Equal(t, newVal, res[key])

		// Untouched keys keep their default.
		for k, v := range def {
			if k != key {
				assert.Equal(t, v, res[k])
			}
		}
	})
}

func TestPropHigherLayerWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := flatTreeGen().Draw(t, "default")

		keys := make([]string, 0, len(def))
		for k := range def {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		// Both layers override subsets of the default's keys with
		// atoms of matching kinds.
		draw := func(label string) Map {
			subset := rapid.SliceOfNDistinct(
				rapid.SampledFrom(keys), 0, len(keys), rapid.ID[string],
			).Draw(t, label)
			layer := Map{}
			for _, k := range subset {
				layer[k] = atomOfKind(def[k].Kind()).Draw(t, label+"-"+k)
			}
			return layer
		}
		high := draw("high")
		low := draw("low")

		res, err := NewChainer().Chain(high, low, def)
		require.NoError(t, err)

		for _, k := range keys {
			switch {
			case high[k] != nil:
				assert.Equal(t, high[k], res[k])
			case low[k] != nil:
				assert.Equal(t, low[k], res[k])
			default:
				assert.Equal(t, def[k], res[k])
			}
		}
	})
}

func TestPropChainIsFoldable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := flatTreeGen().Draw(t, "default")

		keys := make([]string, 0, len(def))
		for k := range def {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		key := rapid.SampledFrom(keys).Draw(t, "key")
		mid := Map{key: atomOfKind(def[key].Kind()).Draw(t, "mid")}
		top := Map{key: atomOfKind(def[key].Kind()).Draw(t, "top")}

		chainer := NewChainer()
		all, err := chainer.Chain(top, mid, def)
		require.NoError(t, err)

		// Folding one layer at a time gives the same tree.
		partial, err := chainer.Chain(mid, def)
		require.NoError(t, err)
		stepwise, err := chainer.Chain(top, partial)
		require.NoError(t, err)

		assert.Equal(t, all, stepwise)
	})
}
