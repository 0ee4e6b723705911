// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import "math"

// ICSource resolves the information content of a term for a given Kind,
// preferring a custom override over the built-in computed value, and
// resolves a term index back to its *Term. Ontology implements this
// interface; tests may supply a lighter stand-in.
type ICSource interface {
	IC(t *Term, k Kind) float64
	TermAt(index int) (*Term, bool)
	ShortestPathLength(a, b *Term) (int, bool)
}

// CommonAncestorsStrict returns ancestors(a) ∩ ancestors(b), excluding both
// a and b themselves even when a == b.
func CommonAncestorsStrict(a, b *Term) map[int]struct{} {
	return intersectAncestors(a, b, false)
}

// CommonAncestorsShared returns (ancestors(a) ∪ {a}) ∩ (ancestors(b) ∪ {b}),
// the "shared" variant the resnik/MICA definition calls for: a term is
// its own ancestor exactly when it participates in the intersection with
// itself (i.e. when a == b, or one is an ancestor of the other).
func CommonAncestorsShared(a, b *Term) map[int]struct{} {
	return intersectAncestors(a, b, true)
}

func intersectAncestors(a, b *Term, includeSelf bool) map[int]struct{} {
	setA := a.ancestors
	setB := b.ancestors
	if includeSelf {
		setA = withSelf(a)
		setB = withSelf(b)
	}
	small, big := setA, setB
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(map[int]struct{})
	for k := range small {
		if _, ok := big[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func withSelf(t *Term) map[int]struct{} {
	out := make(map[int]struct{}, len(t.ancestors)+1)
	for k := range t.ancestors {
		out[k] = struct{}{}
	}
	out[t.index] = struct{}{}
	return out
}

// mica returns the maximum information content, for kind k, over the
// "shared" common ancestors of a and b.
func mica(ic ICSource, a, b *Term, k Kind) float64 {
	best := 0.0
	first := true
	for idx := range CommonAncestorsShared(a, b) {
		t, ok := ic.TermAt(idx)
		if !ok {
			continue
		}
		v := ic.IC(t, k)
		if first || v > best {
			best = v
			first = false
		}
	}
	return best
}

// Kernel computes a pairwise similarity score between a and b for the given
// annotation kind, using the information content source ic.
type Kernel func(ic ICSource, a, b *Term, k Kind) float64

var kernelRegistry = map[string]Kernel{
	"resnik":   resnikKernel,
	"lin":      linKernel,
	"jc":       jcKernel,
	"jc2":      jc2Kernel,
	"rel":      relKernel,
	"ic":       icKernel,
	"graphic":  graphicKernel,
	"dist":     distKernel,
	"equal":    equalKernel,
}

// RegisterKernel adds or replaces a named similarity kernel.
func RegisterKernel(name string, k Kernel) {
	kernelRegistry[name] = k
}

// Similarity computes the named pairwise kernel between a and b for kind k.
// It returns a *NotFoundError if name is not a registered kernel.
func Similarity(ic ICSource, a, b *Term, k Kind, name string) (float64, error) {
	kernel, ok := kernelRegistry[name]
	if !ok {
		return 0, &NotFoundError{Kind: "kernel", Query: name}
	}
	return kernel(ic, a, b, k), nil
}

func resnikKernel(ic ICSource, a, b *Term, k Kind) float64 {
	return mica(ic, a, b, k)
}

func linKernel(ic ICSource, a, b *Term, k Kind) float64 {
	denom := ic.IC(a, k) + ic.IC(b, k)
	if denom == 0 {
		return 0
	}
	return 2 * mica(ic, a, b, k) / denom
}

func jcKernel(ic ICSource, a, b *Term, k Kind) float64 {
	d := ic.IC(a, k) + ic.IC(b, k) - 2*mica(ic, a, b, k)
	if d > 1 {
		d = 1
	}
	v := 1 - d
	if v < 0 {
		v = 0
	}
	return v
}

func jc2Kernel(ic ICSource, a, b *Term, k Kind) float64 {
	d := ic.IC(a, k) + ic.IC(b, k) - 2*mica(ic, a, b, k)
	return 1 / (1 + d)
}

func relKernel(ic ICSource, a, b *Term, k Kind) float64 {
	m := mica(ic, a, b, k)
	lin := linKernel(ic, a, b, k)
	return lin * (1 - math.Exp(-m))
}

func icKernel(ic ICSource, a, b *Term, k Kind) float64 {
	return mica(ic, a, b, k)
}

func graphicKernel(_ ICSource, a, b *Term, _ Kind) float64 {
	setA, setB := withSelf(a), withSelf(b)
	small, big := setA, setB
	if len(big) < len(small) {
		small, big = big, small
	}
	inter := 0
	for idx := range small {
		if _, ok := big[idx]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func distKernel(ic ICSource, a, b *Term, _ Kind) float64 {
	length, ok := ic.ShortestPathLength(a, b)
	if !ok {
		return 0
	}
	return 1 / (1 + float64(length))
}

func equalKernel(_ ICSource, a, b *Term, _ Kind) float64 {
	if a.index == b.index {
		return 1.0
	}
	return 0.0
}
