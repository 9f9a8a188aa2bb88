package term

import "io"

// KeyReader captures single keystrokes from a reader without ever
// blocking the caller. A goroutine drains the reader into a buffered
// channel; Poll performs a non-blocking receive, so input that arrives
// faster than it is consumed simply queues up.
type KeyReader struct {
	keys chan byte
}

// NewKeyReader starts reading keys from r.
func NewKeyReader(r io.Reader) *KeyReader {
	k := &KeyReader{
		keys: make(chan byte, 64),
	}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case k.keys <- buf[0]:
				default:
					// Drop when the buffer is full; stale input is
					// worse than lost input.
				}
			}
			if err != nil {
				close(k.keys)
				return
			}
		}
	}()
	return k
}

// Poll returns the next buffered keystroke, or ok=false immediately if
// none is pending.
func (k *KeyReader) Poll() (byte, bool) {
	select {
	case b, ok := <-k.keys:
		return b, ok
	default:
		return 0, false
	}
}
