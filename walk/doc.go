// Package walk performs the depth-first member graph traversal used to
// populate a freshly produced value.
//
// The walk visits the root, then every exported member of every struct level
// it descends into. The visit callback decides, per member, whether to assign
// a value (as a side effect) and whether to descend into that member. The owner
// of each level is carried down the recursion explicitly, so sibling members of
// the same type never observe each other's instances.
//
// Termination is the callback's responsibility; MaxDepth and the per-path
// cycle guard are available as safety nets.
package walk
