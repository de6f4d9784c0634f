package compat_test

import (
	"context"
	"testing"

	"github.com/asad/ReactionDecoder-sub000/compat"
)

func BenchmarkBuild(b *testing.B) {
	g1 := ring(b, 60, "C", "C", "O", "N")
	g2 := ring(b, 60, "C", "O", "C", "N")
	o := exact(g1, g2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = compat.Build(o)
	}
}

func BenchmarkBuildParallel(b *testing.B) {
	g1 := ring(b, 60, "C", "C", "O", "N")
	g2 := ring(b, 60, "C", "O", "C", "N")
	o := exact(g1, g2)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := compat.BuildParallel(ctx, o); err != nil {
			b.Fatal(err)
		}
	}
}
