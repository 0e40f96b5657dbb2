package flexvec

import (
	"testing"
)

// BenchmarkRealisticUsage compares access patterns across layouts against
// a builtin slice.
func BenchmarkRealisticUsage(b *testing.B) {
	middle := mustConfig(b, WithPlacement(Middle))
	front := DefaultConfig()

	// Test 1: Queue-like use, pushing at the back and popping at the front
	b.Run("Queue/Middle", func(b *testing.B) {
		v, _ := New[int](middle)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 64; j++ {
				_ = v.PushBack(j)
			}
			for j := 0; j < 64; j++ {
				_ = v.PopFront()
			}
		}
	})

	b.Run("Queue/Front", func(b *testing.B) {
		v, _ := New[int](front)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 64; j++ {
				_ = v.PushBack(j)
			}
			for j := 0; j < 64; j++ {
				_ = v.PopFront()
			}
		}
	})

	b.Run("Queue/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 64; j++ {
				s = append(s, j)
			}
			for j := 0; j < 64; j++ {
				s = s[1:]
			}
		}
	})

	// Test 2: Alternating pushes at both ends
	b.Run("BothEnds/Middle", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v, _ := New[int](middle)
			for j := 0; j < 256; j++ {
				_ = v.PushBack(j)
				_ = v.PushFront(j)
			}
		}
	})

	b.Run("BothEnds/Front", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v, _ := New[int](front)
			for j := 0; j < 256; j++ {
				_ = v.PushBack(j)
				_ = v.PushFront(j)
			}
		}
	})

	// Test 3: Small vectors that fit their buffer
	b.Run("SmallBuffer/Buffered", func(b *testing.B) {
		cfg := mustConfig(b, WithStorage(Buffered), WithBaseline(8))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v, _ := New[int](cfg)
			for j := 0; j < 8; j++ {
				_ = v.PushBack(j)
			}
		}
	})

	b.Run("SmallBuffer/Variable", func(b *testing.B) {
		cfg := mustConfig(b, WithBaseline(8))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v, _ := New[int](cfg)
			for j := 0; j < 8; j++ {
				_ = v.PushBack(j)
			}
		}
	})
}

func BenchmarkGrowth(b *testing.B) {
	for _, g := range []struct {
		name string
		opt  Option
	}{
		{"Default", WithDefaultGrowth()},
		{"Linear", WithLinearGrowth(64)},
		{"Exponential", WithExponentialGrowth(2, 1)},
	} {
		cfg := mustConfig(b, g.opt)
		b.Run(g.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v, _ := New[int](cfg)
				for j := 0; j < 4096; j++ {
					_ = v.PushBack(j)
				}
			}
		})
	}
}

func BenchmarkTransfer(b *testing.B) {
	src := mustOf(b, DefaultConfig())
	_ = src.Resize(1024, 1)
	embedded := mustConfig(b, WithStorage(Embedded), WithBaseline(1024))
	middle := mustConfig(b, WithPlacement(Middle))

	b.Run("Clone", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = src.Clone()
		}
	})

	b.Run("CloneIntoEmbedded", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = src.CloneWith(embedded)
		}
	})

	b.Run("TakeRealign", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			tmp, _ := src.Clone()
			b.StartTimer()
			_, _ = Take(middle, tmp)
		}
	})
}
