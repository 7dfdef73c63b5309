package flow_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvlath-simplex/builder"
	"github.com/katalvlaran/lvlath-simplex/core"
	"github.com/katalvlaran/lvlath-simplex/flow"
)

// BenchmarkFlowAlgorithms measures Edmonds–Karp and Dinic on random
// networks of increasing size, plus MaxShipment with balanced supplies.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   int64
		seed     int64
	}{
		{"Small", 200, 0.05, 10, 42},
		{"Medium", 500, 0.02, 20, 4242},
		{"Large", 1000, 0.01, 50, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			// Build the network once per case to isolate algorithmic cost.
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(true)},
				[]builder.BuilderOption{
					builder.WithSeed(tc.seed),
					builder.WithCapacity(builder.UniformAttrFn(1, tc.maxCap)),
					builder.WithSupplies(builder.BalancedSupplyFn(tc.maxCap)),
				},
				builder.RandomSparse(tc.vertices, tc.edgeProb),
			)
			if err != nil {
				b.Fatal(err)
			}
			src, dst := "0", strconv.Itoa(tc.vertices-1)
			opts := flow.DefaultOptions()

			b.Run("EdmondsKarp", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.EdmondsKarp(g, src, dst, opts)
				}
			})

			b.Run("Dinic", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.Dinic(g, src, dst, opts)
				}
			})

			b.Run("MaxShipment", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.MaxShipment(g, opts)
				}
			})
		})
	}
}
