package buffer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeo/buffer"
	"github.com/katalvlaran/lvlgeo/geom"
)

// wavyLine builds a sinusoidal polyline of n vertices: every vertex is a
// corner, so the offset generator emits a join at each one.
func wavyLine(n int) geom.Geometry {
	pts := make([]geom.Point, n)
	for i := range pts {
		x := float64(i)
		pts[i] = geom.Pt(x, 10*math.Sin(x/5))
	}
	line, _ := geom.NewLineString(pts...)
	return line
}

// BenchmarkBuffer_Line measures a round-join, round-cap buffer of a long
// wavy polyline.
func BenchmarkBuffer_Line(b *testing.B) {
	const n = 1000
	line := wavyLine(n)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = buffer.Buffer(line, 2.5)
	}
}

// BenchmarkBuffer_PolygonErode measures a negative buffer of a regular
// polygon, exercising the inward-offset and erosion paths.
func BenchmarkBuffer_PolygonErode(b *testing.B) {
	const sides = 256
	ring := make([]geom.Point, sides+1)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		ring[i] = geom.Pt(100*math.Cos(a), 100*math.Sin(a))
	}
	ring[sides] = ring[0]
	poly, _ := geom.NewPolygon(ring)

	b.ReportAllocs()
	b.SetBytes(int64(sides))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = buffer.Buffer(poly, -10)
	}
}

// BenchmarkOp_ReusedDistances measures reusing one Op across several
// distances, the cheap path for multi-ring corridor maps.
func BenchmarkOp_ReusedDistances(b *testing.B) {
	line := wavyLine(200)
	op := buffer.NewOp(line, buffer.DefaultParams())
	distances := []float64{1, 2, 4, 8}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, d := range distances {
			_, _ = op.Result(d)
		}
	}
}
