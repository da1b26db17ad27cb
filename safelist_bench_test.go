package safelist

import (
	"testing"

	"gopkg.in/yaml.v3"
)

type benchRecord struct {
	Name   string
	Code   int32
	Scores []float64
	Tags   []string
}

var benchItems = []benchRecord{
	{Name: "azerty", Code: 100, Scores: []float64{12.13, 16.23, 75.1}, Tags: []string{"hello", "world"}},
	{Name: "random", Code: 250, Scores: []float64{100.5, 165.63}, Tags: []string{"loling"}},
	{Name: "qwerty", Code: 300, Scores: []float64{153.5}, Tags: nil},
}

func BenchmarkNew(b *testing.B) {
	codec := CBOR[benchRecord]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(benchItems, codec)
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	codec := CBOR[benchRecord]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := New(benchItems, codec)
		_ = Extract(l, codec)
	}
}

func BenchmarkYaml(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(benchItems)
	}
}
