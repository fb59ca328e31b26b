package console

import "io"

// Keys adapts a byte stream, a serial port or a raw-mode terminal, to
// the engine's keystroke interface. A goroutine drains the reader into a
// channel so that Poll never blocks on I/O.
type Keys struct {
	ch     chan byte
	closed chan struct{}
}

// NewKeys starts reading keystrokes from r.
func NewKeys(r io.Reader) *Keys {
	k := &Keys{ch: make(chan byte, 256), closed: make(chan struct{})}
	go func() {
		defer close(k.closed)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for i := 0; i < n; i++ {
				k.ch <- buf[i]
			}
			if err != nil {
				return
			}
		}
	}()
	return k
}

// Poll returns a pending keystroke without blocking.
func (k *Keys) Poll() (byte, bool) {
	select {
	case b := <-k.ch:
		return b, true
	default:
		return 0, false
	}
}

// WaitKey blocks until a keystroke arrives. If the input stream has
// ended it returns KeyEnd, which the console treats as a quit.
func (k *Keys) WaitKey() byte {
	select {
	case b := <-k.ch:
		return b
	case <-k.closed:
		// drain anything that raced with the close
		select {
		case b := <-k.ch:
			return b
		default:
			return keyEnd
		}
	}
}

// Flush discards all pending keystrokes.
func (k *Keys) Flush() {
	for {
		select {
		case <-k.ch:
		default:
			return
		}
	}
}
