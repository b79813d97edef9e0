// SPDX-License-Identifier: MIT

package dense

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/klur/klu"
)

// MaxOrder is the largest dense system the engine will factor. Complex
// matrices count twice their order because of the real embedding.
const MaxOrder = 1 << 13

// Engine is a stateless klu.Engine. The zero value is ready to use.
type Engine struct{}

var _ klu.Engine = Engine{}

// New returns a dense engine.
func New() Engine { return Engine{} }

// symbolic is the analysis result: the validated pattern summary.
type symbolic struct {
	n           int
	nnz         int
	rank        int
	singularCol int
}

// numeric holds the LU factors of the (possibly embedded) system.
type numeric struct {
	n     int       // order of A
	order int       // order of the factored system: n, or 2n when cplx
	cplx  bool      // factors come from ZFactor
	lu    []float64 // row-major order×order, L and U in place
	ipiv  []int
	rs    []float64 // row scale factors of A, nil when unscaled
}

// Defaults resets c to the KLU defaults. It never fails.
func (Engine) Defaults(c *klu.Common) bool {
	if c == nil {
		return false
	}
	c.Reset()
	c.Native = nil

	return true
}

// Analyze validates the CSC pattern and computes its structural rank.
// Invalid patterns yield nil with StatusInvalid.
func (Engine) Analyze(n int, ap, ai []int32, c *klu.Common) klu.Symbolic {
	if c == nil {
		return nil
	}
	c.Status = klu.StatusOK
	if n <= 0 || len(ap) < n+1 {
		c.Status = klu.StatusInvalid
		return nil
	}
	if n > MaxOrder {
		c.Status = klu.StatusTooLarge
		return nil
	}
	if st := validatePattern(n, ap, ai); st != klu.StatusOK {
		c.Status = st
		return nil
	}

	rank, col := structuralRank(n, ap, ai)
	c.Stats.StructuralRank = rank

	return &symbolic{n: n, nnz: int(ap[n]), rank: rank, singularCol: col}
}

// Factor computes P·(R⁻¹·A) = L·U for a real matrix.
func (e Engine) Factor(ap, ai []int32, ax []float64, s klu.Symbolic, c *klu.Common) klu.Numeric {
	return e.factor(ap, ai, ax, s, false, c)
}

// ZFactor computes the LU factors of the real embedding of a complex matrix.
// az is interleaved: az[2p], az[2p+1] are the real and imaginary parts of
// entry p.
func (e Engine) ZFactor(ap, ai []int32, az []float64, s klu.Symbolic, c *klu.Common) klu.Numeric {
	return e.factor(ap, ai, az, s, true, c)
}

func (Engine) factor(ap, ai []int32, x []float64, s klu.Symbolic, cplx bool, c *klu.Common) klu.Numeric {
	if c == nil {
		return nil
	}
	c.Status = klu.StatusOK
	sym, ok := s.(*symbolic)
	if !ok || sym == nil {
		c.Status = klu.StatusInvalid
		return nil
	}
	n := sym.n
	width := 1
	if cplx {
		width = 2
	}
	if len(ap) < n+1 || int(ap[n]) != sym.nnz || len(ai) < sym.nnz || len(x) < width*sym.nnz {
		c.Status = klu.StatusInvalid
		return nil
	}
	order := width * n
	if order > MaxOrder {
		c.Status = klu.StatusTooLarge
		return nil
	}

	if sym.rank < n {
		c.Status = klu.StatusSingular
		c.Stats.SingularCol = sym.singularCol
		if c.HaltIfSingular {
			return nil
		}
	}

	num := &numeric{
		n:     n,
		order: order,
		cplx:  cplx,
		lu:    make([]float64, order*order),
		ipiv:  make([]int, order),
	}
	if cplx {
		scatterComplex(num.lu, n, ap, ai, x)
	} else {
		scatterReal(num.lu, n, ap, ai, x)
	}
	num.rs = scaleRows(num.lu, n, order, c.Scale)

	a := blas64.General{Rows: order, Cols: order, Data: num.lu, Stride: order}
	anorm := lapack64.Lange(lapack.MaxColumnSum, a, make([]float64, order))
	if !lapack64.Getrf(a, num.ipiv) {
		c.Status = klu.StatusSingular
		if c.Stats.SingularCol < 0 {
			c.Stats.SingularCol = firstZeroPivot(num.lu, order) % n
		}
		if c.HaltIfSingular {
			return nil
		}
		c.Stats.Condest = 0
	} else if c.Status == klu.StatusOK {
		c.Stats.Condest = lapack64.Gecon(lapack.MaxColumnSum, a, anorm, make([]float64, 4*order), make([]int, order))
	}

	off := 0
	for i, p := range num.ipiv {
		if p != i {
			off++
		}
	}
	c.Stats.NumOffDiag = off

	return num
}

// Solve solves A·X = B in place.
func (e Engine) Solve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	return e.solve(s, num, ldim, nrhs, b, false, false, false, c)
}

// TSolve solves Aᵀ·X = B in place.
func (e Engine) TSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	return e.solve(s, num, ldim, nrhs, b, false, true, false, c)
}

// ZSolve solves A·X = B in place for a complex factorization.
func (e Engine) ZSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	return e.solve(s, num, ldim, nrhs, b, true, false, false, c)
}

// ZTSolve solves Aᵀ·X = B, or Aᴴ·X = B when conj is set.
func (e Engine) ZTSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, conj bool, c *klu.Common) bool {
	return e.solve(s, num, ldim, nrhs, b, true, true, conj, c)
}

func (Engine) solve(s klu.Symbolic, nm klu.Numeric, ldim, nrhs int, b []float64, cplx, trans, conj bool, c *klu.Common) bool {
	if c == nil {
		return false
	}
	c.Status = klu.StatusOK
	sym, ok := s.(*symbolic)
	if !ok || sym == nil {
		c.Status = klu.StatusInvalid
		return false
	}
	num, ok := nm.(*numeric)
	if !ok || num == nil || num.lu == nil || num.cplx != cplx || num.n != sym.n {
		c.Status = klu.StatusInvalid
		return false
	}
	width := 1
	if cplx {
		width = 2
	}
	n := num.n
	if ldim < n || nrhs < 0 || len(b) < width*ldim*nrhs {
		c.Status = klu.StatusInvalid
		return false
	}
	if nrhs == 0 {
		return true
	}

	// Gather B into a row-major order×nrhs block.
	rhs := make([]float64, num.order*nrhs)
	flip := cplx && trans && !conj // Aᵀx = b  ⇔  Aᴴ·conj(x) = conj(b)
	for k := 0; k < nrhs; k++ {
		for i := 0; i < n; i++ {
			if cplx {
				at := 2 * (k*ldim + i)
				im := b[at+1]
				if flip {
					im = -im
				}
				rhs[i*nrhs+k] = b[at]
				rhs[(n+i)*nrhs+k] = im
				continue
			}
			rhs[i*nrhs+k] = b[k*ldim+i]
		}
	}

	tr := blas.NoTrans
	if trans {
		tr = blas.Trans
	}
	// (R⁻¹A)·x = R⁻¹b before the solve; Aᵀ·R⁻¹·y = b after it.
	if !trans {
		unscale(rhs, num.rs, n, nrhs, width)
	}
	lapack64.Getrs(tr,
		blas64.General{Rows: num.order, Cols: num.order, Data: num.lu, Stride: num.order},
		blas64.General{Rows: num.order, Cols: nrhs, Data: rhs, Stride: nrhs},
		num.ipiv)
	if trans {
		unscale(rhs, num.rs, n, nrhs, width)
	}

	for k := 0; k < nrhs; k++ {
		for i := 0; i < n; i++ {
			if cplx {
				at := 2 * (k*ldim + i)
				im := rhs[(n+i)*nrhs+k]
				if flip {
					im = -im
				}
				b[at] = rhs[i*nrhs+k]
				b[at+1] = im
				continue
			}
			b[k*ldim+i] = rhs[i*nrhs+k]
		}
	}

	return true
}

// FreeNumeric releases a real factorization.
func (Engine) FreeNumeric(num *klu.Numeric, _ *klu.Common) { freeNumeric(num) }

// ZFreeNumeric releases a complex factorization.
func (Engine) ZFreeNumeric(num *klu.Numeric, _ *klu.Common) { freeNumeric(num) }

// FreeSymbolic releases an analysis result.
func (Engine) FreeSymbolic(s *klu.Symbolic, _ *klu.Common) {
	if s == nil {
		return
	}
	*s = nil
}

// FreeCommon drops engine state attached to c.
func (Engine) FreeCommon(c *klu.Common) {
	if c == nil {
		return
	}
	c.Native = nil
}

func freeNumeric(num *klu.Numeric) {
	if num == nil || *num == nil {
		return
	}
	if nm, ok := (*num).(*numeric); ok && nm != nil {
		nm.lu, nm.ipiv, nm.rs = nil, nil, nil
	}
	*num = nil
}

// validatePattern applies the klu_analyze input checks: ap[0] == 0, ap is
// non-decreasing, rows are in range and unique within each column.
func validatePattern(n int, ap, ai []int32) klu.Status {
	if ap[0] != 0 {
		return klu.StatusInvalid
	}
	for j := 0; j < n; j++ {
		if ap[j] > ap[j+1] {
			return klu.StatusInvalid
		}
	}
	nnz := int(ap[n])
	if len(ai) < nnz {
		return klu.StatusInvalid
	}

	seen := make([]int, n) // row -> last column+1 that touched it
	for j := 0; j < n; j++ {
		for p := ap[j]; p < ap[j+1]; p++ {
			i := ai[p]
			if i < 0 || int(i) >= n {
				return klu.StatusInvalid
			}
			if seen[i] == j+1 {
				return klu.StatusInvalid
			}
			seen[i] = j + 1
		}
	}

	return klu.StatusOK
}

// structuralRank returns the size of a maximum column→row matching of the
// pattern and the first column left unmatched (-1 when the rank is full).
func structuralRank(n int, ap, ai []int32) (rank, firstUnmatched int) {
	matchRow := make([]int, n)
	for i := range matchRow {
		matchRow[i] = -1
	}
	visited := make([]int, n)

	var augment func(j, stamp int) bool
	augment = func(j, stamp int) bool {
		for p := ap[j]; p < ap[j+1]; p++ {
			i := int(ai[p])
			if visited[i] == stamp {
				continue
			}
			visited[i] = stamp
			if matchRow[i] < 0 || augment(matchRow[i], stamp) {
				matchRow[i] = j
				return true
			}
		}
		return false
	}

	firstUnmatched = -1
	for j := 0; j < n; j++ {
		if augment(j, j+1) {
			rank++
		} else if firstUnmatched < 0 {
			firstUnmatched = j
		}
	}

	return rank, firstUnmatched
}

func scatterReal(a []float64, n int, ap, ai []int32, ax []float64) {
	for j := 0; j < n; j++ {
		for p := ap[j]; p < ap[j+1]; p++ {
			a[int(ai[p])*n+j] = ax[p]
		}
	}
}

// scatterComplex writes [Ar -Ai; Ai Ar] into the 2n×2n buffer a.
func scatterComplex(a []float64, n int, ap, ai []int32, az []float64) {
	m := 2 * n
	for j := 0; j < n; j++ {
		for p := ap[j]; p < ap[j+1]; p++ {
			i := int(ai[p])
			re, im := az[2*p], az[2*p+1]
			a[i*m+j] = re
			a[i*m+n+j] = -im
			a[(n+i)*m+j] = im
			a[(n+i)*m+n+j] = re
		}
	}
}

// scaleRows divides every row i of A by rs[i] and returns rs. For the complex
// embedding rows i and n+i share the factor of row i of A. Returns nil for
// ScaleNone. Zero rows keep a factor of 1.
func scaleRows(a []float64, n, order int, mode klu.Scaling) []float64 {
	if mode != klu.ScaleSum && mode != klu.ScaleMax {
		return nil
	}
	cplx := order != n
	rs := make([]float64, n)
	for i := 0; i < n; i++ {
		var acc float64
		for j := 0; j < n; j++ {
			v := math.Abs(a[i*order+j])
			if cplx {
				v = math.Hypot(a[i*order+j], a[(n+i)*order+j])
			}
			if mode == klu.ScaleSum {
				acc += v
			} else if v > acc {
				acc = v
			}
		}
		if acc == 0 {
			acc = 1
		}
		rs[i] = acc
	}

	for r := 0; r < order; r++ {
		inv := 1 / rs[r%n]
		row := a[r*order : (r+1)*order]
		for j := range row {
			row[j] *= inv
		}
	}

	return rs
}

// unscale divides rows of the row-major right-hand-side block by rs.
func unscale(rhs, rs []float64, n, nrhs, width int) {
	if rs == nil {
		return
	}
	for r := 0; r < width*n; r++ {
		inv := 1 / rs[r%n]
		for k := 0; k < nrhs; k++ {
			rhs[r*nrhs+k] *= inv
		}
	}
}

func firstZeroPivot(lu []float64, order int) int {
	for i := 0; i < order; i++ {
		if lu[i*order+i] == 0 {
			return i
		}
	}
	return 0
}
