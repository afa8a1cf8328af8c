package fftlog

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by the transform engine.
var (
	ErrNilKernel      = errors.New("fftlog: kernel must not be nil")
	ErrShortGrid      = errors.New("fftlog: grid needs at least two points")
	ErrGridDomain     = errors.New("fftlog: grid must be positive and increasing")
	ErrNotLogSpaced   = errors.New("fftlog: grid must be log-evenly spaced")
	ErrFFTLength      = errors.New("fftlog: FFT length is shorter than the grid")
	ErrInvalidTilt    = errors.New("fftlog: kernel is singular at the chosen tilt")
	ErrLengthMismatch = errors.New("fftlog: input length does not match the grid")
	ErrCheckGivingUp  = errors.New("fftlog: input too concentrated for diagnostics")
)

// Kernel is the Mellin transform U_K(z) of an integral kernel K(t),
// evaluated on the vertical line z = q + iω sampled by the engine.
type Kernel func(z complex128) complex128

// Options configures a Transform.
type Options struct {
	// N is the FFT length. Zero selects the smallest power of two that at
	// least doubles the grid length, so the padding is at least a half.
	N int

	// LowRing shifts the output grid to the low-ringing phase when the FFT
	// length is even, reducing sampling artifacts.
	LowRing bool
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() Options {
	return Options{LowRing: true}
}

// Extrap selects per-side padding behavior in Apply: power-law
// extrapolation of the input tails, or zero padding.
type Extrap struct {
	Left  bool
	Right bool
}

// Common extrapolation settings.
var (
	ExtrapBoth = Extrap{Left: true, Right: true}
	ExtrapNone = Extrap{}
)

// Transform computes a fixed integral transform on a fixed log-even grid.
//
// Prefac and Postfac are multiplicative corrections applied elementwise
// before and after the convolution. They are initialized to ones; named
// transforms multiply their algebraic factors into them after construction.
// All other state is immutable after New.
type Transform struct {
	Prefac  []float64
	Postfac []float64

	x     []float64
	y     []float64
	q     float64
	delta float64
	lnxy  float64

	n      int
	fftLen int
	npad   int

	xmq []float64 // x^-q
	ymq []float64 // y^-q

	u    []complex128
	plan *algofft.Plan[complex128]
}

// New constructs a Transform for the grid x, Mellin kernel and tilt q.
//
// The grid must contain at least two positive, strictly increasing,
// log-evenly spaced points (relative tolerance 1e-3 on the spacing ratio).
// New fails with ErrInvalidTilt if the kernel is singular on the sampling
// line, i.e. the tilt must avoid the poles of U_K.
func New(x []float64, kernel Kernel, q float64, opts Options) (*Transform, error) {
	if kernel == nil {
		return nil, ErrNilKernel
	}

	n := len(x)
	if n < 2 {
		return nil, ErrShortGrid
	}

	if x[0] <= 0 || x[n-1] <= x[0] {
		return nil, ErrGridDomain
	}

	delta := math.Log(x[n-1]/x[0]) / float64(n-1)
	ratio := math.Exp(delta)

	for i := 1; i < n; i++ {
		if x[i] <= 0 {
			return nil, ErrGridDomain
		}

		if math.Abs(x[i]/x[i-1]-ratio) > 1e-3*ratio {
			return nil, ErrNotLogSpaced
		}
	}

	fftLen := opts.N
	if fftLen == 0 {
		folds := int(math.Ceil(math.Log2(float64(n)))) + 1
		fftLen = 1 << folds
	}

	if fftLen < n {
		return nil, ErrFFTLength
	}

	// lnxy = ln(xmin*ymax) = ln(xmax*ymin); zero unless the low-ringing
	// condition applies.
	lnxy := 0.0
	if opts.LowRing && fftLen%2 == 0 {
		lnxy = delta / math.Pi * cmplx.Phase(kernel(complex(q, math.Pi/delta)))
	}

	y := make([]float64, n)
	c := math.Exp(lnxy - delta)

	for i := range y {
		y[i] = c / x[n-1-i]
	}

	u := make([]complex128, fftLen/2+1)
	w := 2 * math.Pi / (float64(fftLen) * delta)

	for m := range u {
		fm := float64(m)
		u[m] = kernel(complex(q, w*fm)) * cmplx.Exp(complex(0, -lnxy*w*fm))

		if cmplx.IsNaN(u[m]) || cmplx.IsInf(u[m]) {
			return nil, fmt.Errorf("%w: U_K(%g%+gi) is not finite", ErrInvalidTilt, q, w*fm)
		}
	}

	plan, err := algofft.NewPlan64(fftLen)
	if err != nil {
		return nil, fmt.Errorf("fftlog: failed to create FFT plan: %w", err)
	}

	t := &Transform{
		Prefac:  make([]float64, n),
		Postfac: make([]float64, n),
		x:       x,
		y:       y,
		q:       q,
		delta:   delta,
		lnxy:    lnxy,
		n:       n,
		fftLen:  fftLen,
		npad:    fftLen - n,
		xmq:     make([]float64, n),
		ymq:     make([]float64, n),
		u:       u,
		plan:    plan,
	}

	for i := 0; i < n; i++ {
		t.Prefac[i] = 1
		t.Postfac[i] = 1
		t.xmq[i] = math.Pow(x[i], -q)
		t.ymq[i] = math.Pow(y[i], -q)
	}

	return t, nil
}

// X returns the input grid. The slice is shared; treat it as read-only.
func (t *Transform) X() []float64 { return t.x }

// Y returns the conjugate output grid. The slice is shared; treat it as
// read-only.
func (t *Transform) Y() []float64 { return t.y }

// Q returns the power-law tilt.
func (t *Transform) Q() float64 { return t.q }

// Len returns the grid length.
func (t *Transform) Len() int { return t.n }

// FFTLen returns the padded FFT length.
func (t *Transform) FFTLen() int { return t.fftLen }

// Apply evaluates the transform of F tabulated on the input grid.
//
// The input is padded symmetrically to the FFT length, per side either with
// a power-law continuation of the two outermost samples or with zeros, then
// convolved with the kernel coefficients; the paddings are discarded before
// output. Returns the conjugate grid y and the transformed values G.
//
// Apply does not mutate the Transform and is safe for concurrent use.
func (t *Transform) Apply(F []float64, extrap Extrap) (y, G []float64, err error) {
	if len(F) != t.n {
		return nil, nil, ErrLengthMismatch
	}

	f := make([]float64, t.n)
	vecmath.MulBlock(f, t.Prefac, F)
	vecmath.MulBlockInPlace(f, t.xmq)

	buf := make([]complex128, t.fftLen)
	left := t.npad / 2
	right := t.npad - left

	// Power-law continuation blows up when a tail sample is zero; fall
	// back to zero padding for that side.
	if extrap.Left && f[0] != 0 && f[1] != 0 {
		r := f[1] / f[0]
		v := f[0]

		for j := left - 1; j >= 0; j-- {
			v /= r
			buf[j] = complex(v, 0)
		}
	}

	for i, v := range f {
		buf[left+i] = complex(v, 0)
	}

	if extrap.Right && f[t.n-1] != 0 && f[t.n-2] != 0 {
		r := f[t.n-1] / f[t.n-2]
		v := f[t.n-1]

		for j := 0; j < right; j++ {
			v *= r
			buf[left+t.n+j] = complex(v, 0)
		}
	}

	spec := make([]complex128, t.fftLen)

	err = t.plan.Forward(spec, buf)
	if err != nil {
		return nil, nil, fmt.Errorf("fftlog: forward FFT failed: %w", err)
	}

	// Multiply the half-spectrum by the kernel coefficients and transform
	// back through the Hermitian conjugate, which evaluates the hfft of
	// g_m with the plan's normalized inverse.
	N := t.fftLen
	h := make([]complex128, N)

	for m := 0; m <= N/2; m++ {
		h[m] = cmplx.Conj(spec[m] * t.u[m])
	}

	for m := 1; m <= N/2; m++ {
		if N-m > N/2 {
			h[N-m] = cmplx.Conj(h[m])
		}
	}

	h[0] = complex(real(h[0]), 0)
	if N%2 == 0 {
		h[N/2] = complex(real(h[N/2]), 0)
	}

	out := make([]complex128, N)

	err = t.plan.Inverse(out, h)
	if err != nil {
		return nil, nil, fmt.Errorf("fftlog: inverse FFT failed: %w", err)
	}

	G = make([]float64, t.n)
	start := right // the leading discard equals the right padding count

	for i := range G {
		G[i] = real(out[start+i])
	}

	vecmath.MulBlockInPlace(G, t.Postfac)
	vecmath.MulBlockInPlace(G, t.ymq)

	return t.y, G, nil
}

// Check runs heuristic diagnostics on an input function and returns
// human-readable warnings about tilt balance and tail behavior. An empty
// slice means the input looks well conditioned for this transform.
func (t *Transform) Check(F []float64) ([]string, error) {
	if len(F) != t.n {
		return nil, ErrLengthMismatch
	}

	f := make([]float64, t.n)
	vecmath.MulBlock(f, t.Prefac, F)
	vecmath.MulBlockInPlace(f, t.xmq)

	fabs := make([]float64, t.n)
	for i, v := range f {
		fabs[i] = math.Abs(v)
	}

	cum := floats.CumSum(make([]float64, t.n), fabs)
	total := cum[t.n-1]

	iQ1 := sort.SearchFloat64s(cum, 0.25*total)
	iQ3 := sort.SearchFloat64s(cum, 0.75*total)

	if iQ1 == 0 || iQ1 == iQ3 || iQ3 == t.n {
		return nil, ErrCheckGivingUp
	}

	mean := func(s []float64) float64 {
		return floats.Sum(s) / float64(len(s))
	}

	fabsL := mean(fabs[:iQ1])
	fabsM := mean(fabs[iQ1:iQ3])
	fabsR := mean(fabs[iQ3:])

	var warnings []string

	if fabsL > fabsM {
		warnings = append(warnings, fmt.Sprintf(
			"left wing seems heavy: %.2g vs %.2g, change tilt and mind convergence", fabsL, fabsM))
	}

	if fabsM < fabsR {
		warnings = append(warnings, fmt.Sprintf(
			"right wing seems heavy: %.2g vs %.2g, change tilt and mind convergence", fabsM, fabsR))
	}

	if fabs[0] > fabs[1] {
		warnings = append(warnings, fmt.Sprintf(
			"left tail may blow up: %.2g vs %.2g, change tilt or avoid extrapolation", f[0], f[1]))
	}

	if fabs[t.n-2] < fabs[t.n-1] {
		warnings = append(warnings, fmt.Sprintf(
			"right tail may blow up: %.2g vs %.2g, change tilt or avoid extrapolation", f[t.n-2], f[t.n-1]))
	}

	if f[0]*f[1] < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"left tail looks wiggly: %.2g vs %.2g, avoid extrapolation", f[0], f[1]))
	}

	if f[t.n-2]*f[t.n-1] < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"right tail looks wiggly: %.2g vs %.2g, avoid extrapolation", f[t.n-2], f[t.n-1]))
	}

	return warnings, nil
}
