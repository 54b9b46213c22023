// Package matrix provides fixed-size row-major matrices. Vectors are row
// vectors multiplied on the left, so a translation lives in the last row.
package matrix

import (
	"errors"
	"strings"

	"github.com/echoflaresat/geomkit/scalar"
)

// ErrSingular is returned when inverting a matrix whose determinant is zero.
var ErrSingular = errors.New("matrix is singular")

func format(name string, rows ...[]float64) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	first := true
	for _, row := range rows {
		for _, v := range row {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteString(scalar.Format(v))
		}
	}
	b.WriteByte(')')
	return b.String()
}

func equalRows(a, b []float64) bool {
	for i := range a {
		if !scalar.AreEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func det3(a, b, c, d, e, f, g, h, i float64) float64 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}
