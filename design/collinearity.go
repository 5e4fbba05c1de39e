package design

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSVDFailed indicates the singular value decomposition did not converge.
var ErrSVDFailed = errors.New("design: singular value decomposition failed")

// epsFloat64 is the machine epsilon for float64 (2^-52).
const epsFloat64 = 2.220446049250313e-16

// Report summarizes the collinearity check of a design matrix. The check
// is purely advisory: a degenerate report never alters the model.
type Report struct {
	MaxSingular float64
	MinSingular float64
	Rank        int
	// Degenerate is set when the smallest singular value is numerically
	// zero, i.e. the design columns are linearly dependent.
	Degenerate bool
}

// CheckCollinearity computes the singular values and numeric rank of the
// design values. Rank counts singular values above the numpy-style
// tolerance eps * max(rows, cols) * maxSingular; the same tolerance
// decides degeneracy.
//
// Values must be finite: the decomposition is undefined over NaN, so a
// matrix containing one is rejected with ErrMissingValue.
func CheckCollinearity(values *mat.Dense) (Report, error) {
	rs, cs := values.Dims()
	for i := 0; i < rs; i++ {
		for j := 0; j < cs; j++ {
			if math.IsNaN(values.At(i, j)) {
				return Report{}, ErrMissingValue
			}
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(values, mat.SVDNone); !ok {
		return Report{}, ErrSVDFailed
	}
	sv := svd.Values(nil)
	if len(sv) == 0 {
		return Report{}, ErrSVDFailed
	}

	// Values are ordered descending.
	r := Report{MaxSingular: sv[0], MinSingular: sv[len(sv)-1]}

	tol := epsFloat64 * float64(max(rs, cs)) * r.MaxSingular
	for _, s := range sv {
		if s > tol {
			r.Rank++
		}
	}
	r.Degenerate = r.MinSingular <= tol || math.IsNaN(r.MinSingular)

	return r, nil
}
