//Package adf accumulates angular distribution functions: histograms over
//[0, pi] of the bond angles carried by a line graph, or of any other angle
//collection. The histogram machinery follows the same conventions as the
//rest of the library: plain float64 slices, gonum underneath.
package adf

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/graphpot/graph"
)

//Data is a histogram of angles in radians. The bins are delimited by
//len(histo)+1 equally spaced dividers spanning [0, pi].
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//New returns an empty angular histogram with nbins bins over [0, pi].
func New(nbins int) (*Data, error) {
	if nbins <= 0 {
		return nil, &Error{"adf.New: need at least one bin", nil}
	}
	d := new(Data)
	d.dividers = floats.Span(make([]float64, nbins+1), 0, math.Pi)
	d.histo = make([]float64, nbins)
	return d, nil
}

//FromAngles returns a histogram with nbins bins over [0, pi] filled with the
//given angles. Angles outside [0, pi] are omitted; exactly pi lands in the
//last bin.
func FromAngles(nbins int, angles []float64) (*Data, error) {
	d, err := New(nbins)
	if err != nil {
		return nil, err
	}
	data := make([]float64, 0, len(angles))
	for _, v := range angles {
		if v < 0 || v > math.Pi {
			continue
		}
		//stat.Histogram half-opens the last bin; pi belongs in it anyway
		if v == math.Pi {
			v = math.Nextafter(math.Pi, 0)
		}
		data = append(data, v)
	}
	sort.Float64s(data)
	stat.Histogram(d.histo, d.dividers, data, nil)
	d.total = len(data)
	return d, nil
}

//FromLineGraph returns a histogram with nbins bins of the physical bond
//angles of lg. The theta edge attribute must have been computed already (see
//graph.ComputeTheta); when lg comes from the directed builder the pi-shift is
//applied here, so the histogram is always over physical angles.
func FromLineGraph(lg *graph.LineGraph, nbins int) (*Data, error) {
	th, ok := lg.EData[graph.Theta]
	if !ok {
		return nil, &Error{"adf.FromLineGraph: line graph has no theta edge attribute. Run graph.ComputeTheta first", nil}
	}
	angles := make([]float64, lg.NumEdges())
	for e := range angles {
		angles[e] = th.At(e, 0)
		if lg.RequiresPiShift {
			angles[e] = math.Pi - angles[e]
		}
	}
	d, err := FromAngles(nbins, angles)
	if err != nil {
		return nil, &Error{"adf.FromLineGraph: " + err.Error(), nil}
	}
	return d, nil
}

//AddAngles adds the given angles, in radians, to the histogram. Angles
//outside [0, pi] are omitted; exactly pi lands in the last bin.
func (D *Data) AddAngles(angles ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range angles {
		if v < 0 || v > math.Pi {
			continue
		}
		D.total++
		if v == math.Pi {
			D.histo[last-1]++
			continue
		}
		for j := 0; j < last; j++ {
			if D.dividers[j] <= v && v < D.dividers[j+1] {
				D.histo[j]++
				break
			}
		}
	}
	if norma {
		D.Normalize()
	}
}

//Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram so the bins sum to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize takes the histogram back to raw counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Total returns the number of angles accumulated into the histogram.
func (D *Data) Total() int {
	return D.total
}

//Sum returns the sum over all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//View returns the bins themselves. Changes to the returned slice will be
//reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

//CopyDividers copies the dividers of the histogram into dest, or into a
//newly allocated slice if dest is nil or too short.
func (D *Data) CopyDividers(dest []float64) []float64 {
	if len(dest) < len(D.dividers) {
		dest = make([]float64, len(D.dividers))
	}
	dest = dest[:len(D.dividers)]
	return floats.ScaleTo(dest, 1, D.dividers)
}

//Error is the same as graphpot.Error, redeclared here to avoid a circular import.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
