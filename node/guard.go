package node

import "reflect"

// PathGuard tracks which struct types are on the current recursion path so a
// walk can refuse to descend into a type it is already inside of.
type PathGuard struct {
	active map[reflect.Type]int
}

// Enter pushes t onto the path. It returns false when t is already active.
func (g *PathGuard) Enter(t reflect.Type) bool {
	if g.active == nil {
		g.active = make(map[reflect.Type]int)
	}

	t = Base(t)
	if g.active[t] > 0 {
		return false
	}

	g.active[t]++

	return true
}

// Leave pops t from the path.
func (g *PathGuard) Leave(t reflect.Type) {
	t = Base(t)
	if g.active[t] <= 1 {
		delete(g.active, t)
		return
	}

	g.active[t]--
}

// Active reports whether t is on the current path.
func (g *PathGuard) Active(t reflect.Type) bool {
	return g.active[Base(t)] > 0
}
