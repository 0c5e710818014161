// Package path rebuilds vertex sequences from predecessor (parent) maps
// produced by the bfs and hops packages.
//
// A parent map records, for every reached vertex except the root, the
// vertex it was discovered from. Walking it backwards from a destination
// yields the route from the root, which Reconstruct returns root-first.
//
// Reconstruct excludes the destination itself and returns an empty slice
// when the destination is the root or was never reached. A parent map that
// contains a cycle cannot come from a traversal tree; Reconstruct reports it
// as ErrMalformedParents instead of looping.
//
// Complexity: O(L) time and space, L = length of the returned path.
package path

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedParents indicates that following parent links revisited a vertex.
var ErrMalformedParents = errors.New("path: parent map contains a cycle")

// Reconstruct returns the predecessors of dest in root-to-dest order,
// excluding dest. The result is empty (never nil) when dest has no parent.
func Reconstruct[V comparable](parents map[V]V, dest V) ([]V, error) {
	out := []V{}
	visited := map[V]struct{}{dest: {}}

	cur := dest
	for {
		prev, ok := parents[cur]
		if !ok {
			break
		}
		if _, again := visited[prev]; again || len(out) >= len(parents) {
			return nil, fmt.Errorf("%w: revisited %v while walking back from %v", ErrMalformedParents, prev, dest)
		}
		visited[prev] = struct{}{}
		out = append(out, prev)
		cur = prev
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// To returns the full route root..dest inclusive. It is Reconstruct with
// dest appended.
func To[V comparable](parents map[V]V, dest V) ([]V, error) {
	p, err := Reconstruct(parents, dest)
	if err != nil {
		return nil, err
	}

	return append(p, dest), nil
}

// Join formats each vertex with %v and concatenates them with sep.
// Join([]string{"s", "b", "c"}, "") is "sbc".
func Join[V any](p []V, sep string) string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}
