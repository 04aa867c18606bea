package relalg

import (
	"github.com/roach88/relalg/internal/plan"
)

// Graph is the view of a plan the traversal needs: dense handles and their
// source edges. *plan.Plan implements it.
type Graph interface {
	Len() int
	Sources(h plan.Handle) []plan.Handle
}

// linearize returns the handles reachable from root in emission order.
//
// The top of the stack is only popped once every source has been visited.
// Visiting marks a node when it is pushed, which is enough for the ordering
// guarantee: a node still on the stack is an ancestor of the top, and a DAG
// cannot make it a source of the top as well.
func linearize(g Graph, root plan.Handle) []plan.Handle {
	visited := make([]bool, g.Len())
	order := make([]plan.Handle, 0, g.Len())

	stack := []plan.Handle{root}
	visited[root] = true

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if next, ok := firstUnvisited(g.Sources(top), visited); ok {
			visited[next] = true
			stack = append(stack, next)
			continue
		}
		order = append(order, top)
		stack = stack[:len(stack)-1]
	}

	return order
}

// firstUnvisited returns the first source, in source order, not yet visited.
func firstUnvisited(sources []plan.Handle, visited []bool) (plan.Handle, bool) {
	for _, s := range sources {
		if !visited[s] {
			return s, true
		}
	}
	return plan.NoHandle, false
}
