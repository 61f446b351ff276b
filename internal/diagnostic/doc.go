// Package diagnostic collects the structured warnings the synthesis engine
// emits when it degrades instead of failing.
//
// Key capabilities:
//   - Constructor exhaustion reports (SYN001)
//   - Unsupported collection shapes (SYN002)
//   - Cycle and depth cuts during hierarchy population (SYN003, SYN004)
//   - Member assignment failures (SYN005)
package diagnostic
