// SPDX-License-Identifier: MIT

//go:build suitesparse

package suitesparse

/*
#cgo CFLAGS: -I/usr/include/suitesparse
#cgo LDFLAGS: -lklu -lbtf -lamd -lcolamd -lsuitesparseconfig
#include <stdlib.h>
#include <klu.h>
*/
import "C"

import (
	"unsafe"

	"github.com/katalvlaran/klur/klu"
)

// Engine calls libklu. The zero value is ready to use.
type Engine struct{}

var _ klu.Engine = Engine{}

// New returns a KLU engine.
func New() Engine { return Engine{} }

type symbolic struct{ p *C.klu_symbolic }

type numeric struct {
	p    *C.klu_numeric
	cplx bool
}

// native returns the C record behind c, pushing c's settings into it.
func native(c *klu.Common) *C.klu_common {
	if c == nil {
		return nil
	}
	cc, _ := c.Native.(*C.klu_common)
	if cc == nil {
		return nil
	}
	cc.tol = C.double(c.Tol)
	cc.btf = boolInt(c.BTF)
	cc.ordering = C.int(c.Ordering)
	cc.scale = C.int(c.Scale)
	cc.halt_if_singular = boolInt(c.HaltIfSingular)

	return cc
}

// pull copies status and statistics from the C record back into c.
func pull(c *klu.Common, cc *C.klu_common) {
	c.Status = klu.Status(cc.status)
	c.Stats.StructuralRank = int(cc.structural_rank)
	c.Stats.SingularCol = int(cc.singular_col)
	c.Stats.NumOffDiag = int(cc.noffdiag)
	c.Stats.Condest = float64(cc.rcond)
}

// Defaults allocates a klu_common and fills it with klu_defaults.
func (Engine) Defaults(c *klu.Common) bool {
	if c == nil {
		return false
	}
	cc := (*C.klu_common)(C.malloc(C.sizeof_klu_common))
	if cc == nil {
		c.Status = klu.StatusOutOfMemory
		return false
	}
	if C.klu_defaults(cc) != 1 {
		C.free(unsafe.Pointer(cc))
		c.Status = klu.StatusInvalid
		return false
	}
	c.Reset()
	c.Native = cc
	c.Tol = float64(cc.tol)
	c.BTF = cc.btf != 0
	c.Ordering = klu.Ordering(cc.ordering)
	c.Scale = klu.Scaling(cc.scale)
	c.HaltIfSingular = cc.halt_if_singular != 0

	return true
}

func (Engine) Analyze(n int, ap, ai []int32, c *klu.Common) klu.Symbolic {
	cc := native(c)
	if cc == nil {
		invalid(c)
		return nil
	}
	p := C.klu_analyze(C.int(n), intPtr(ap), intPtr(ai), cc)
	pull(c, cc)
	if p == nil {
		return nil
	}
	c.Stats.NoffDiag = int(p.nzoff)

	return &symbolic{p: p}
}

func (Engine) Factor(ap, ai []int32, ax []float64, s klu.Symbolic, c *klu.Common) klu.Numeric {
	cc, sym := native(c), symOf(s)
	if cc == nil || sym == nil {
		invalid(c)
		return nil
	}
	p := C.klu_factor(intPtr(ap), intPtr(ai), doublePtr(ax), sym, cc)
	if p != nil && cc.status == C.KLU_OK {
		C.klu_rcond(sym, p, cc)
	}
	pull(c, cc)
	if p == nil {
		return nil
	}

	return &numeric{p: p}
}

func (Engine) ZFactor(ap, ai []int32, az []float64, s klu.Symbolic, c *klu.Common) klu.Numeric {
	cc, sym := native(c), symOf(s)
	if cc == nil || sym == nil {
		invalid(c)
		return nil
	}
	p := C.klu_z_factor(intPtr(ap), intPtr(ai), doublePtr(az), sym, cc)
	if p != nil && cc.status == C.KLU_OK {
		C.klu_z_rcond(sym, p, cc)
	}
	pull(c, cc)
	if p == nil {
		return nil
	}

	return &numeric{p: p, cplx: true}
}

func (Engine) Solve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	cc, sym, nm := native(c), symOf(s), numOf(num, false)
	if cc == nil || sym == nil || nm == nil {
		invalid(c)
		return false
	}
	ok := C.klu_solve(sym, nm, C.int(ldim), C.int(nrhs), doublePtr(b), cc)
	pull(c, cc)

	return ok == 1
}

func (Engine) TSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	cc, sym, nm := native(c), symOf(s), numOf(num, false)
	if cc == nil || sym == nil || nm == nil {
		invalid(c)
		return false
	}
	ok := C.klu_tsolve(sym, nm, C.int(ldim), C.int(nrhs), doublePtr(b), cc)
	pull(c, cc)

	return ok == 1
}

func (Engine) ZSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	cc, sym, nm := native(c), symOf(s), numOf(num, true)
	if cc == nil || sym == nil || nm == nil {
		invalid(c)
		return false
	}
	ok := C.klu_z_solve(sym, nm, C.int(ldim), C.int(nrhs), doublePtr(b), cc)
	pull(c, cc)

	return ok == 1
}

func (Engine) ZTSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, conj bool, c *klu.Common) bool {
	cc, sym, nm := native(c), symOf(s), numOf(num, true)
	if cc == nil || sym == nil || nm == nil {
		invalid(c)
		return false
	}
	ok := C.klu_z_tsolve(sym, nm, C.int(ldim), C.int(nrhs), doublePtr(b), boolInt(conj), cc)
	pull(c, cc)

	return ok == 1
}

func (Engine) FreeNumeric(num *klu.Numeric, c *klu.Common) {
	if num == nil || *num == nil {
		return
	}
	if nm, ok := (*num).(*numeric); ok && nm.p != nil {
		C.klu_free_numeric(&nm.p, native(c))
	}
	*num = nil
}

func (Engine) ZFreeNumeric(num *klu.Numeric, c *klu.Common) {
	if num == nil || *num == nil {
		return
	}
	if nm, ok := (*num).(*numeric); ok && nm.p != nil {
		C.klu_z_free_numeric(&nm.p, native(c))
	}
	*num = nil
}

func (Engine) FreeSymbolic(s *klu.Symbolic, c *klu.Common) {
	if s == nil || *s == nil {
		return
	}
	if sym, ok := (*s).(*symbolic); ok && sym.p != nil {
		C.klu_free_symbolic(&sym.p, native(c))
	}
	*s = nil
}

func (Engine) FreeCommon(c *klu.Common) {
	if c == nil {
		return
	}
	if cc, ok := c.Native.(*C.klu_common); ok && cc != nil {
		C.free(unsafe.Pointer(cc))
	}
	c.Native = nil
}

func invalid(c *klu.Common) {
	if c != nil {
		c.Status = klu.StatusInvalid
	}
}

func symOf(s klu.Symbolic) *C.klu_symbolic {
	if sym, ok := s.(*symbolic); ok && sym != nil {
		return sym.p
	}
	return nil
}

func numOf(n klu.Numeric, cplx bool) *C.klu_numeric {
	if nm, ok := n.(*numeric); ok && nm != nil && nm.cplx == cplx {
		return nm.p
	}
	return nil
}

func intPtr(s []int32) *C.int {
	if len(s) == 0 {
		return nil
	}
	return (*C.int)(unsafe.Pointer(&s[0]))
}

func doublePtr(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&s[0]))
}

func boolInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
