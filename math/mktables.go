//go:build ignore

// mktables generates tables.go, the CORDIC angle and gain tables.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math/big"
	"os"
	"text/template"
)

const (
	iterations = 30
	prec       = 256
)

var tablesTemplate = `// Code generated by "go run mktables.go"; DO NOT EDIT.

package math

// iterations is the maximum number of CORDIC micro-rotations.
const iterations = {{ .N }}

// cordicK is the inverse of the asymptotic CORDIC gain, 1/∏√(1+2**-2i), as a
// S2_30 raw value.
const cordicK = {{ printf "%#08x" .K }}

// arctangents[i] is atan(2**-i) in turns, as Frac32 raw values.
var arctangents = [iterations]uint32{
{{- range .Atan }}
	{{ printf "%#08x" . }},
{{- end }}
}

// gains[i] is the inverse of the gain of i micro-rotations, as S2_30 raw
// values.
var gains = [iterations]int32{
{{- range .Gains }}
	{{ printf "%#08x" . }},
{{- end }}
}

// gainRatios[i] is gains[i]/cordicK, as S2_30 raw values.
var gainRatios = [iterations]int32{
{{- range .Ratios }}
	{{ printf "%#08x" . }},
{{- end }}
}
`

func newFloat() *big.Float { return new(big.Float).SetPrec(prec) }

// atan returns atan(x) for 0 < x < 1 from its Taylor series.
func atan(x *big.Float) *big.Float {
	sum := newFloat()
	x2 := newFloat().Mul(x, x)
	term := newFloat().Set(x)
	eps := newFloat().SetMantExp(big.NewFloat(1), -prec)
	for k := int64(1); term.Cmp(eps) > 0; k += 2 {
		t := newFloat().Quo(term, newFloat().SetInt64(k))
		if k%4 == 1 {
			sum.Add(sum, t)
		} else {
			sum.Sub(sum, t)
		}
		term.Mul(term, x2)
	}
	return sum
}

func inv(n int64) *big.Float {
	return newFloat().Quo(newFloat().SetInt64(1), newFloat().SetInt64(n))
}

// scaled returns floor(x * 2**shift) for x >= 0.
func scaled(x *big.Float, shift int) uint64 {
	v, _ := newFloat().SetMantExp(x, shift).Uint64()
	return v
}

func main() {
	log.Default().SetFlags(log.Lshortfile)

	// Machin: π = 16 atan(1/5) - 4 atan(1/239)
	pi := newFloat().Sub(
		newFloat().Mul(newFloat().SetInt64(16), atan(inv(5))),
		newFloat().Mul(newFloat().SetInt64(4), atan(inv(239))))
	tau := newFloat().Mul(pi, newFloat().SetInt64(2))

	var data struct {
		N                   int
		K                   uint64
		Atan, Gains, Ratios []uint64
	}
	data.N = iterations

	for i := 0; i < iterations; i++ {
		var a *big.Float
		if i == 0 {
			a = newFloat().Quo(pi, newFloat().SetInt64(4))
		} else {
			a = atan(newFloat().SetMantExp(big.NewFloat(1), -i))
		}
		data.Atan = append(data.Atan, scaled(newFloat().Quo(a, tau), 32))
	}

	// gains converge well before 2*prec iterations
	g := newFloat().SetInt64(1)
	var gs []*big.Float
	for i := 0; i < 2*prec; i++ {
		gs = append(gs, newFloat().Set(g))
		d := newFloat().Add(newFloat().SetInt64(1), newFloat().SetMantExp(big.NewFloat(1), -2*i))
		g.Quo(g, d.Sqrt(d))
	}
	k := g
	data.K = scaled(k, 30)
	for i := 0; i < iterations; i++ {
		data.Gains = append(data.Gains, scaled(gs[i], 30))
		data.Ratios = append(data.Ratios, scaled(newFloat().Quo(gs[i], k), 30))
	}

	tmpl, err := template.New("tablesTemplate").Parse(tablesTemplate)
	if err != nil {
		log.Fatalln(err)
	}
	source := bytes.NewBuffer(nil)
	if err = tmpl.Execute(source, &data); err != nil {
		log.Fatalln(err)
	}
	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(fmt.Errorf("%w\n%s", err, source.Bytes()))
	}
	if err = os.WriteFile("tables.go", formattedSource, 0644); err != nil {
		log.Fatalln(err)
	}
}
