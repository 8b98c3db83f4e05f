package chfloat

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/cpuid/v2"
)

// Benchmark inputs mirror the three distributions real workloads show:
// short fixed-notation values, mixed scientific notation, and very long
// digit strings.
var (
	benchOnce       sync.Once
	benchShortNoExp [1024]string
	benchMixed      [1024]string
	benchManyDigits [1024]string
	benchInts       [1024]string
	benchShortB     [1024][]byte
	benchMixedB     [1024][]byte
	benchManyB      [1024][]byte
	benchIntsB      [1024][]byte
	benchNumbers    []byte // JSON array of the mixed distribution
)

func initBenchInputs() {
	benchOnce.Do(func() {
		rng := rand.New(rand.NewSource(42))
		for i := range benchShortNoExp {
			benchShortNoExp[i] = fmt.Sprintf("%d.%02d", rng.Intn(1000000), rng.Intn(100))
		}
		for i := range benchMixed {
			x := rng.NormFloat64() * math.Pow(10, float64(rng.Intn(60)-30))
			benchMixed[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		digits := "0123456789"
		for i := range benchManyDigits {
			var sb strings.Builder
			sb.WriteByte(digits[1+rng.Intn(9)])
			for j := 0; j < 30+rng.Intn(10); j++ {
				sb.WriteByte(digits[rng.Intn(10)])
			}
			sb.WriteByte('.')
			for j := 0; j < 10; j++ {
				sb.WriteByte(digits[rng.Intn(10)])
			}
			benchManyDigits[i] = sb.String()
		}
		for i := range benchInts {
			benchInts[i] = strconv.FormatInt(rng.Int63()-rng.Int63(), 10)
		}
		for i := range benchShortB {
			benchShortB[i] = []byte(benchShortNoExp[i])
			benchMixedB[i] = []byte(benchMixed[i])
			benchManyB[i] = []byte(benchManyDigits[i])
			benchIntsB[i] = []byte(benchInts[i])
		}
		benchNumbers = []byte("[" + strings.Join(benchMixed[:], ",") + "]")
	})
}

var cpuOnce sync.Once

func logCPU(b *testing.B) {
	cpuOnce.Do(func() {
		b.Logf("cpu: %s (%d cores, avx2: %v)",
			cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, cpuid.CPU.Supports(cpuid.AVX2))
	})
}

var BenchSink int

func benchmarkFloat64(b *testing.B, inputs [][]byte) {
	initBenchInputs()
	logCPU(b)
	total := 0
	for _, s := range inputs {
		total += len(s)
	}
	b.SetBytes(int64(total / len(inputs)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, n, _ := ParseFloat64(inputs[i%len(inputs)])
		BenchSink += n
	}
}

func benchmarkStrconv64(b *testing.B, inputs []string) {
	initBenchInputs()
	total := 0
	for _, s := range inputs {
		total += len(s)
	}
	b.SetBytes(int64(total / len(inputs)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := strconv.ParseFloat(inputs[i%len(inputs)], 64)
		BenchSink += int(v)
	}
}

func BenchmarkParseFloat64Short(b *testing.B)      { benchmarkFloat64(b, benchShortB[:]) }
func BenchmarkParseFloat64Mixed(b *testing.B)      { benchmarkFloat64(b, benchMixedB[:]) }
func BenchmarkParseFloat64ManyDigits(b *testing.B) { benchmarkFloat64(b, benchManyB[:]) }

func BenchmarkStrconvFloat64Short(b *testing.B)      { initBenchInputs(); benchmarkStrconv64(b, benchShortNoExp[:]) }
func BenchmarkStrconvFloat64Mixed(b *testing.B)      { initBenchInputs(); benchmarkStrconv64(b, benchMixed[:]) }
func BenchmarkStrconvFloat64ManyDigits(b *testing.B) { initBenchInputs(); benchmarkStrconv64(b, benchManyDigits[:]) }

func BenchmarkParseFloat32Short(b *testing.B) {
	initBenchInputs()
	logCPU(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, n, _ := ParseFloat32(benchShortB[i%len(benchShortB)])
		BenchSink += n
	}
}

func BenchmarkStrconvFloat32Short(b *testing.B) {
	initBenchInputs()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, _ := strconv.ParseFloat(benchShortNoExp[i%len(benchShortNoExp)], 32)
		BenchSink += int(v)
	}
}

func BenchmarkParseInt64(b *testing.B) {
	initBenchInputs()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, _, _ := ParseInt64(benchIntsB[i%len(benchIntsB)], 10)
		BenchSink += int(v)
	}
}

func BenchmarkStrconvInt64(b *testing.B) {
	initBenchInputs()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, _ := strconv.ParseInt(benchInts[i%len(benchInts)], 10, 64)
		BenchSink += int(v)
	}
}

// The number-array benchmarks compare against general-purpose JSON decoders
// over the same values, the closest widely used alternatives for bulk float
// decoding.

func BenchmarkNumbersChfloat(b *testing.B) {
	initBenchInputs()
	b.SetBytes(int64(len(benchNumbers)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := benchNumbers[1:] // skip '['
		for len(buf) > 0 {
			_, n, err := ParseFloat64(buf)
			if err != nil {
				b.Fatal(err)
			}
			BenchSink += n
			if n+1 > len(buf) {
				break
			}
			buf = buf[n+1:] // skip ',' or ']'
		}
	}
}

func BenchmarkNumbersEncodingJson(b *testing.B) {
	initBenchInputs()
	b.SetBytes(int64(len(benchNumbers)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out []float64
		if err := json.Unmarshal(benchNumbers, &out); err != nil {
			b.Fatal(err)
		}
		BenchSink += len(out)
	}
}

func BenchmarkNumbersJsoniter(b *testing.B) {
	initBenchInputs()
	b.SetBytes(int64(len(benchNumbers)))
	b.ReportAllocs()
	b.ResetTimer()
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	for i := 0; i < b.N; i++ {
		var out []float64
		if err := json.Unmarshal(benchNumbers, &out); err != nil {
			b.Fatal(err)
		}
		BenchSink += len(out)
	}
}
