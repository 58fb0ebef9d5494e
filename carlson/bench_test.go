package carlson

import "testing"

var sinkF float64

func BenchmarkRF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkF = RF(2, 3, 4)
	}
}

func BenchmarkRJ(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkF = RJ(2, 3, 4, 5)
	}
}

func BenchmarkRG(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkF = RG(2, 3, 4)
	}
}
