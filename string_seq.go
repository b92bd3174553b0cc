// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"regexp"
	"strings"

	"github.com/lazyseq/lazy/function"
)

// StringSequence is the character specialization of Sequence: an indexable
// sequence of runes with match/split operators layered on top. Indexing is
// by rune position, not byte offset, so multi-byte characters behave as
// single elements the way the JS original's UTF-16 code units mostly do.
type StringSequence interface {
	Indexable[rune]

	// CharAt returns the character at index i as a single-rune string.
	CharAt(i int) string

	// Match returns the sequence of successive matches of pattern
	// against the source string.
	Match(pattern *regexp.Regexp) Sequence[string]

	// Split splits the source on every occurrence of sep, including a
	// final (possibly empty) segment after the last occurrence. An
	// empty sep splits into individual characters.
	Split(sep string) Sequence[string]

	// SplitRegexp splits the source on every match of pattern. A
	// pattern matching only the empty string splits into individual
	// characters, the same as Split("").
	SplitRegexp(pattern *regexp.Regexp) Sequence[string]
}

// FromString builds a StringSequence over s.
func FromString(s string) StringSequence {
	n := &stringSeq{runes: []rune(s), source: s}
	n.self = n
	return n
}

type stringSeq struct {
	base[rune]
	runes  []rune
	source string
}

func (s *stringSeq) Each(visitor function.Visitor[rune]) {
	for i, r := range s.runes {
		if !visitor(r, i) {
			return
		}
	}
}

func (s *stringSeq) Get(i int) rune { return s.runes[i] }
func (s *stringSeq) Len() int       { return len(s.runes) }

func (s *stringSeq) CharAt(i int) string { return string(s.runes[i]) }

func (s *stringSeq) Match(pattern *regexp.Regexp) Sequence[string] {
	n := &matchNode{source: s.source, pattern: pattern}
	n.self = n
	return n
}

func (s *stringSeq) Split(sep string) Sequence[string] {
	if sep == "" {
		out := make([]string, len(s.runes))
		for i, r := range s.runes {
			out[i] = string(r)
		}
		return NewSliceSequence(out)
	}
	return NewSliceSequence(strings.Split(s.source, sep))
}

func (s *stringSeq) SplitRegexp(pattern *regexp.Regexp) Sequence[string] {
	return NewSliceSequence(pattern.Split(s.source, -1))
}

// matchNode streams successive regexp matches against source, advancing a
// cursor after each match the way a stateful global pattern scanner would.
// regexp.Regexp itself holds no mutable scan state in Go, so — unlike the
// JS original — there is no risk of Match mutating a caller-held pattern.
type matchNode struct {
	base[string]
	source  string
	pattern *regexp.Regexp
}

func (n *matchNode) Each(visitor function.Visitor[string]) {
	pos := 0
	i := 0
	for pos <= len(n.source) {
		loc := n.pattern.FindStringIndex(n.source[pos:])
		if loc == nil {
			return
		}
		start, end := pos+loc[0], pos+loc[1]
		if !visitor(n.source[start:end], i) {
			return
		}
		i++
		if end == start {
			pos = end + 1
		} else {
			pos = end
		}
	}
}
