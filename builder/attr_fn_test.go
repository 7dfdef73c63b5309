package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-simplex/builder"
)

func TestUniformAttrFn(t *testing.T) {
	t.Parallel()

	fn := builder.UniformAttrFn(-3, 3)
	require.Equal(t, int64(-3), fn(nil))

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		v := fn(rng)
		require.GreaterOrEqual(t, v, int64(-3))
		require.LessOrEqual(t, v, int64(3))
	}
	require.Equal(t, int64(4), builder.UniformAttrFn(4, 4)(rng))
	require.Panics(t, func() { builder.UniformAttrFn(2, 1) })
}

func TestBalancedSupplyFn(t *testing.T) {
	t.Parallel()

	ids := []string{"a", "b", "c", "d", "e"}

	got := builder.BalancedSupplyFn(3)(nil, ids)
	require.Equal(t, map[string]int64{"a": 3, "b": -3, "c": 3, "d": -3, "e": 0}, got)

	rng := rand.New(rand.NewSource(11))
	got = builder.BalancedSupplyFn(3)(rng, ids)
	var sum int64
	for _, id := range ids[:4] {
		require.GreaterOrEqual(t, got[id], int64(-3))
		require.LessOrEqual(t, got[id], int64(3))
	}
	for _, s := range got {
		sum += s
	}
	require.Zero(t, sum)

	require.Empty(t, builder.BalancedSupplyFn(1)(rng, nil))
	require.Panics(t, func() { builder.BalancedSupplyFn(-1) })
}
