package isd

import (
	"encoding/binary"
	"sort"

	"github.com/pqclabs/hqc/cyclic"
	"github.com/pqclabs/hqc/xof"
)

// Stern runs a meet-in-the-middle ISD attack: it picks a random "parity
// window" J of W bit positions, splits [0,n) into two halves, enumerates
// every way to split the weight-w support p1+p2 across the halves within
// Bound of w/2, builds a hash table of left-half candidates keyed by their
// projection onto J, and probes it with right-half candidates. Grounded on
// the reference isd/algorithm/stern.rs.
type Stern struct {
	// WindowSize is the number of bit positions (|J|) used as the
	// collision key. Must be > 0 and <= n-w.
	WindowSize int
	// Bound limits how far p1 can stray from w/2 (|p1 - w/2| <= Bound).
	Bound int
	// WindowTries is the number of independent random windows to attempt
	// before giving up.
	WindowTries int
	// Seed seeds the window selection XOF.
	Seed []byte
	// CapPerKey bounds how many left-half candidates are kept per
	// collision-table bucket, trading completeness for bounded memory.
	CapPerKey int
}

// DefaultStern returns a Stern solver configured with the reference
// implementation's defaults.
func DefaultStern() *Stern {
	return &Stern{
		WindowSize:  100,
		Bound:       4,
		WindowTries: 100,
		Seed:        []byte("default_seed"),
		CapPerKey:   100,
	}
}

func (*Stern) Name() string { return "stern" }

func (st *Stern) Solve(n, w int, h, s *cyclic.Vector) (*cyclic.Vector, error) {
	if h.N() != n || s.N() != n {
		return nil, &Error{Kind: InvalidParameter, Reason: "length mismatch: h.N() or s.N() != n"}
	}
	if n == 0 {
		return nil, nil
	}
	if st.WindowSize <= 0 || st.WindowSize > n-w {
		return nil, &Error{Kind: InvalidParameter, Reason: "window_size must be > 0 and <= n - w"}
	}

	for i := 0; i < st.WindowTries; i++ {
		seed := make([]byte, 0, len(st.Seed)+8)
		seed = append(seed, st.Seed...)
		var iBytes [8]byte
		binary.LittleEndian.PutUint64(iBytes[:], uint64(i))
		seed = append(seed, iBytes[:]...)

		window := selectWindow(n, st.WindowSize, seed)
		mid := w / 2

		for delta := 0; delta <= st.Bound; delta++ {
			for _, sign := range [2]int{0, 1} {
				var p1 int
				if sign == 0 {
					p1 = mid + delta
				} else {
					p1 = mid - delta
					if p1 < 0 {
						p1 = 0
					}
				}
				if p1 > w {
					continue
				}
				p2 := w - p1

				n1 := n / 2
				n2 := n - n1
				if p1 > n1 || p2 > n2 {
					continue
				}

				if y := sternTryOnce(n, w, h, s, n1, n2, p1, p2, window, st.CapPerKey); y != nil {
					return y, nil
				}
			}
		}
	}

	return nil, nil
}

// randBounded draws a value in [0, bound) from stream by rejection
// sampling against the largest multiple of bound that fits a uint64, the
// bias-avoiding construction the spec requires for bounded draws outside
// the fixed-weight support sampler.
func randBounded(stream *xof.Stream, bound uint64) uint64 {
	limit := (^uint64(0) / bound) * bound
	for {
		b := stream.Next(8)
		r := binary.LittleEndian.Uint64(b)
		if r < limit {
			return r % bound
		}
	}
}

// selectWindow draws a set of exactly windowSize positions from [0, n) by
// the reference implementation's left-biased variant: it scans the top
// windowSize candidate slots n-windowSize..n-1 and, on each, draws a random
// position in [0, slot]; a collision with an already-chosen position is
// resolved by taking the slot itself instead, guaranteeing the final set
// has exactly windowSize members (though not drawn uniformly — see the
// Stern window sampler open question). The result is sorted ascending.
func selectWindow(n, windowSize int, seed []byte) []int {
	stream := xof.NewStream(seed)
	chosen := make(map[int]bool, windowSize*2)
	for j := n - windowSize; j < n; j++ {
		t := int(randBounded(stream, uint64(j+1)))
		if chosen[t] {
			chosen[j] = true
		} else {
			chosen[t] = true
		}
	}

	window := make([]int, 0, len(chosen))
	for idx := range chosen {
		window = append(window, idx)
	}
	sort.Ints(window)
	return window
}

// hMulYOnWindow computes the |window|-bit projection of h*y onto window,
// where y's support is supportY, without materializing h*y in full.
func hMulYOnWindow(n int, h *cyclic.Vector, supportY []int, window []int) []uint64 {
	key := make([]uint64, (len(window)+63)/64)
	for i, pos := range window {
		var bit bool
		for _, t := range supportY {
			idx := (pos + n - (t % n)) % n
			if h.Get(idx) {
				bit = !bit
			}
		}
		if bit {
			key[i/64] |= uint64(1) << uint(i%64)
		}
	}
	return key
}

// sXorHMulYKeyOnWindow computes the |window|-bit projection of s XOR h*y
// onto window, where y's support is support.
func sXorHMulYKeyOnWindow(n int, s, h *cyclic.Vector, support []int, window []int) []uint64 {
	key := make([]uint64, (len(window)+63)/64)
	for i, pos := range window {
		bit := s.Get(pos)
		for _, t := range support {
			idx := (pos + n - (t % n)) % n
			if h.Get(idx) {
				bit = !bit
			}
		}
		if bit {
			key[i/64] |= uint64(1) << uint(i%64)
		}
	}
	return key
}

func keyString(key []uint64) string {
	b := make([]byte, len(key)*8)
	for i, w := range key {
		binary.LittleEndian.PutUint64(b[i*8:], w)
	}
	return string(b)
}

// sternTryOnce runs one (window, p1, p2) attempt of the meet-in-the-middle
// search: build a capped hash table of left-half (size-p1) candidates keyed
// by their window projection of h*y1, then probe it with every right-half
// (size-p2) candidate's window projection of s XOR h*y2.
func sternTryOnce(n, w int, h, s *cyclic.Vector, n1, n2, p1, p2 int, window []int, capPerKey int) *cyclic.Vector {
	if n1+n2 != n || p1 > n1 || p2 > n2 {
		return nil
	}

	table := make(map[string][][]int)
	forEachCombination(n1, p1, func(supportY1 []int) bool {
		y1 := append([]int(nil), supportY1...)
		key := keyString(hMulYOnWindow(n, h, y1, window))
		bucket := table[key]
		if len(bucket) < capPerKey {
			table[key] = append(bucket, y1)
		}
		return true
	})

	var answer *cyclic.Vector
	forEachCombination(n2, p2, func(supportY2 []int) bool {
		y2 := make([]int, len(supportY2))
		for i, idx := range supportY2 {
			y2[i] = n1 + idx
		}
		key := keyString(sXorHMulYKeyOnWindow(n, s, h, y2, window))

		for _, y1 := range table[key] {
			supp := make([]int, 0, len(y1)+len(y2))
			supp = append(supp, y1...)
			supp = append(supp, y2...)
			y := cyclic.FromIndices(n, supp)
			if checkCandidate(w, h, s, y) {
				answer = y
				return false
			}
		}
		return true
	})

	return answer
}
