// Package layout fits grid dimensions to a requested piece count and image
// orientation.
package layout

import "math"

// OptimalDimensions returns the grid width and height whose product is close
// to the requested piece count while keeping pieces close to square for the
// given orientation factor (image width divided by height).
//
// The search starts from the rounded square-root estimate and examines a 5×5
// neighborhood of candidate dimensions, scoring each by the piece aspect
// ratio error plus the piece count error.
func OptimalDimensions(npieces int, orientation float64) (nx, ny int) {
	nh := int(math.Round(math.Sqrt(float64(npieces) * orientation)))
	if nh < 1 {
		nh = 1
	}
	nv := int(math.Round(float64(npieces) / float64(nh)))

	errMin := math.Inf(1)
	nx, ny = nh, nv

	for ky := 0; ky < 5; ky++ {
		ncv := nv + ky - 2
		for kx := 0; kx < 5; kx++ {
			nch := nh + kx - 2
			if ncv < 1 || nch < 1 {
				continue
			}
			ratio := float64(nch) / (float64(ncv) * orientation)
			score := (ratio + 1/ratio) - 2
			score += math.Abs(1 - float64(nch*ncv)/float64(npieces))
			if score < errMin {
				errMin = score
				nx, ny = nch, ncv
			}
		}
	}
	return nx, ny
}
