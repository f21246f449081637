package confined

import (
	"runtime"
)

// goroutineID extracts the current goroutine's id from the stack header,
// which has the fixed form "goroutine N [state]:". The runtime exposes no
// cheaper portable way to identify a goroutine; the cost is acceptable
// because dereferences happen on the single context goroutine, never on a
// per-draw hot path.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	const prefix = len("goroutine ")
	var id uint64
	for _, c := range buf[prefix:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
