// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import "fmt"

// NotFoundError reports a failed lookup of a term, gene, disease or named
// kernel/combiner.
type NotFoundError struct {
	// Kind names what was being looked up, e.g. "term", "gene", "kernel".
	Kind string
	// Query is the query that failed to resolve.
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hpo: %s not found: %s", e.Kind, e.Query)
}

// ParseError reports a malformed input artifact encountered while building
// an Ontology from its canonical text files.
type ParseError struct {
	// Source names the artifact being parsed, e.g. "hp.obo".
	Source string
	// Line is the 1-based line number at which the error was detected, or
	// 0 if not applicable.
	Line int
	// Msg describes the problem.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("hpo: parse error in %s at line %d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("hpo: parse error in %s: %s", e.Source, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvariantViolationError reports a structural invariant that the ontology
// graph is required to hold but does not, such as a cycle in the is-a
// relation or a duplicate dense index.
type InvariantViolationError struct {
	Msg string
	Err error
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("hpo: invariant violation: %s", e.Msg)
}

func (e *InvariantViolationError) Unwrap() error { return e.Err }

// DomainError reports a request that is well-formed but not meaningful for
// the given arguments, such as asking for the path to a non-ancestor, or
// comparing two sets under incompatible IC kinds.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("hpo: domain error: %s", e.Msg)
}

// IndexError reports an out-of-range access into a Matrix.
type IndexError struct {
	// Dim names the out-of-range dimension, e.g. "row" or "col".
	Dim   string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("hpo: %s index %d out of range [0,%d)", e.Dim, e.Index, e.Len)
}
