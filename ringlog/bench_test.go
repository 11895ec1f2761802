package ringlog_test

import (
	"testing"

	"github.com/katalvlaran/lvring/ringlog"
	"github.com/katalvlaran/lvring/sequence"
)

// BenchmarkAppend_Wrapped measures steady-state appends with no observers.
func BenchmarkAppend_Wrapped(b *testing.B) {
	r, _ := ringlog.New(256, 128)
	for i := 0; i < 256; i++ {
		r.Append("warmup line")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Append("level=info msg=\"sample reading\" value=3.71")
	}
}

// BenchmarkSnapshot measures ordered reconstruction into a reused Sequence.
func BenchmarkSnapshot(b *testing.B) {
	r, _ := ringlog.New(256, 64)
	for i := 0; i < 300; i++ {
		r.Append("line")
	}
	out := sequence.New[*ringlog.Line](sequence.WithFixedCapacity(256))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Snapshot(out)
	}
}
