// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"bufio"
	"os"

	"github.com/lazyseq/lazy/function"
)

// FileLines returns a Sequence over the lines of the file at path, read
// lazily one line at a time. The file is opened once up front to surface a
// missing-file or permission error immediately, then closed; each
// subsequent Each call reopens and rescans the file from the start, so the
// sequence can be iterated more than once. FileLines has no Len, so chained
// operators use their non-indexable variants.
func FileLines(path string) (Sequence[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	f.Close()

	n := &fileLinesNode{path: path}
	n.self = n
	return n, nil
}

type fileLinesNode struct {
	base[string]
	path string
}

func (n *fileLinesNode) Each(visitor function.Visitor[string]) {
	f, err := os.Open(n.path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanLines)

	i := 0
	for scanner.Scan() {
		if !visitor(scanner.Text(), i) {
			return
		}
		i++
	}
}
