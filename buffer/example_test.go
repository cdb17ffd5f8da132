package buffer_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgeo/buffer"
	"github.com/katalvlaran/lvlgeo/geom"
)

// ExampleBuffer buffers a line with flat end caps: the result is the
// rectangle of all points within distance 2 of the line.
func ExampleBuffer() {
	line, _ := geom.NewLineString(geom.Pt(0, 0), geom.Pt(10, 0))

	out, err := buffer.Buffer(line, 2, buffer.WithEndCapStyle(buffer.EndCapFlat))
	if err != nil {
		fmt.Println("buffer failed:", err)
		return
	}
	env := out.Envelope()
	fmt.Printf("envelope: [%.0f, %.0f] x [%.0f, %.0f]\n",
		env.MinX(), env.MaxX(), env.MinY(), env.MaxY())
	// Output:
	// envelope: [0, 10] x [-2, 2]
}

// ExampleOp erodes a polygon by reusing one configured operation for
// several distances.
func ExampleOp() {
	poly, _ := geom.NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	})
	op := buffer.NewOp(poly, buffer.DefaultParams())

	for _, d := range []float64{-2, -6} {
		out, err := op.Result(d)
		if err != nil {
			fmt.Println("buffer failed:", err)
			return
		}
		fmt.Printf("distance %v: empty=%v\n", d, out.IsEmpty())
	}
	// Output:
	// distance -2: empty=false
	// distance -6: empty=true
}
