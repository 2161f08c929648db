package vec

import (
	"testing"
)

// BenchmarkRealisticUsage tests scenarios where the container is typically used
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append-heavy workload
	b.Run("AppendGrowing/Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 1000; j++ {
				v.Append(j)
			}
		}
	})

	b.Run("AppendGrowing/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 2: Append with the final size known up front
	b.Run("AppendReserved/Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			v.Reserve(1000)
			for j := 0; j < 1000; j++ {
				v.Append(j)
			}
		}
	})

	b.Run("AppendReserved/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Struct elements
	type record struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("StructAppend/Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := New[record]()
			v.Reserve(100)
			for j := 0; j < 100; j++ {
				v.Append(record{ID: int64(j)})
			}
		}
	})

	b.Run("StructAppend/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := make([]record, 0, 100)
			for j := 0; j < 100; j++ {
				s = append(s, record{ID: int64(j)})
			}
			_ = s
		}
	})

	// Test 4: Fill then drain
	b.Run("FillDrain/Vector", func(b *testing.B) {
		v := New[int]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				v.Append(j)
			}
			for v.Len() > 0 {
				v.Pop()
			}
		}
	})

	b.Run("FillDrain/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				s = append(s, j)
			}
			for len(s) > 0 {
				s = s[:len(s)-1]
			}
		}
	})
}

func BenchmarkInsertFront(b *testing.B) {
	v := New[int]()
	v.Reserve(b.N + 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Insert(0, i)
	}
}

func BenchmarkIndexAccess(b *testing.B) {
	v := New[int]()
	for i := 0; i < 1024; i++ {
		v.Append(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		sum += v.Get(i & 1023)
	}
	_ = sum
}
