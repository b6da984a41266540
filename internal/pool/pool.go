// Package pool recycles the scratch slices the layout pass burns through
// on every frame.
package pool

import "sync"

var floats = sync.Pool{
	New: func() any {
		s := make([]float32, 0, 16)
		return &s
	},
}

// Floats returns a zeroed float32 slice of length n.
func Floats(n int) []float32 {
	p := floats.Get().(*[]float32)
	s := *p
	if cap(s) < n {
		s = make([]float32, n)
	} else {
		s = s[:n]
		for i := range s {
			s[i] = 0
		}
	}
	*p = s
	return s
}

// PutFloats returns a slice obtained from Floats.
func PutFloats(s []float32) {
	s = s[:0]
	floats.Put(&s)
}
