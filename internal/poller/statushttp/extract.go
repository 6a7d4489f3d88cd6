// internal/poller/statushttp/extract.go
package statushttp

import (
	"fmt"
	"io"
)

// boundedBuffer is a fixed-capacity byte accumulator.
// An append past capacity is refused, never truncated.
type boundedBuffer struct {
	buf []byte
	max int
}

func newBoundedBuffer(capacity int) *boundedBuffer {
	return &boundedBuffer{
		buf: make([]byte, 0, capacity),
		max: capacity,
	}
}

func (b *boundedBuffer) append(c byte) error {
	if len(b.buf) >= b.max {
		return fmt.Errorf("%w: %d bytes", ErrBufferOverflow, b.max)
	}
	b.buf = append(b.buf, c)
	return nil
}

// extractObject isolates the outermost balanced {...} object from a raw
// byte stream, discarding everything outside it (status line, headers,
// trailing bytes). It reads until the stream ends; the peer closes the
// connection per the Connection: close contract.
//
// Brace-depth isolation: '{' raises depth, any byte seen at depth > 0
// is kept, '}' lowers depth after the keep check so the closing brace
// of the outer object is retained. Nested objects and arrays fall out
// naturally.
//
// Known limitation: quoting is not tracked, so a literal brace inside a
// JSON string value corrupts the depth count. Accepted for the expected
// payload shape (entity names do not contain braces).
func extractObject(r io.ByteReader, capacity int) ([]byte, error) {
	out := newBoundedBuffer(capacity)
	depth := 0

	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if c == '{' {
			depth++
		}
		if depth > 0 {
			if err := out.append(c); err != nil {
				return nil, err
			}
		}
		if c == '}' && depth > 0 {
			depth--
		}
	}

	return out.buf, nil
}
