package entropy

import (
	"encoding/binary"
	"fmt"
	"io"
)

const sampleBytes = 256

// HealthCheck performs a lightweight sanity check of r.
// It cannot prove randomness, but detects disconnection, stuck output and
// other common failures of a device-backed source.
func HealthCheck(r io.Reader) error {
	buf := make([]byte, sampleBytes)

	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: read failed: %v", ErrUnavailable, err)
	}

	// Trivial stuck check: all identical
	allSame := true
	for i := 1; i < len(buf); i++ {
		if buf[i] != buf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return fmt.Errorf("%w: source appears stuck (all sampled bytes identical)", ErrUnavailable)
	}

	// Excessive 32-bit repeats
	var prev uint32
	repeats := 0
	words := 0
	for i := 0; i+4 <= len(buf); i += 4 {
		w := binary.BigEndian.Uint32(buf[i : i+4])
		if words > 0 && w == prev {
			repeats++
		}
		prev = w
		words++
	}
	if words > 1 && repeats > (words-1)*3/4 {
		return fmt.Errorf("%w: source appears stuck (32-bit words repeating excessively)", ErrUnavailable)
	}

	// Too few distinct byte values
	distinct := make(map[byte]struct{}, 256)
	for _, b := range buf {
		distinct[b] = struct{}{}
	}
	if len(distinct) < 8 {
		return fmt.Errorf("%w: sample has too few distinct byte values (%d)", ErrUnavailable, len(distinct))
	}

	return nil
}
