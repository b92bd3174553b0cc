// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"strings"

	"github.com/lazyseq/lazy/function"
)

// StreamSequence is the stream-like specialization: an abstract sequence of
// chunks (typically string fragments) with a Lines operator layered on
// top. Unlike other sources, a StreamSequence backed by a channel is
// single-pass — once its underlying channel is drained, a second Each sees
// nothing — exactly as the teacher's own channel-based pipelines behave,
// so StreamSequence is explicitly exempt from the general re-entrancy
// guarantee other sources provide.
type StreamSequence interface {
	Sequence[string]

	// Lines splits each chunk on newlines and flat-emits the resulting
	// lines. Lines does not reassemble a line that spans two chunks —
	// a known limitation inherited unchanged from the distilled spec,
	// not something to silently "fix" here.
	Lines() Sequence[string]
}

// FromChannel adapts a channel of chunks into a StreamSequence. The
// channel must be closed by its producer when the stream ends.
func FromChannel(ch <-chan string) StreamSequence {
	n := &channelNode{ch: ch}
	n.self = n
	return n
}

type channelNode struct {
	base[string]
	ch <-chan string
}

func (n *channelNode) Each(visitor function.Visitor[string]) {
	i := 0
	for v := range n.ch {
		if !visitor(v, i) {
			return
		}
		i++
	}
}

func (n *channelNode) Lines() Sequence[string] {
	ln := &linesNode{parent: n}
	ln.self = ln
	return ln
}

type linesNode struct {
	base[string]
	parent Sequence[string]
}

func (n *linesNode) Each(visitor function.Visitor[string]) {
	i := 0
	stop := false
	n.parent.Each(func(chunk string, _ int) bool {
		for _, line := range strings.Split(chunk, "\n") {
			if !visitor(line, i) {
				stop = true
				break
			}
			i++
		}
		return !stop
	})
}
