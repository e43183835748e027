package path

// Buffer output protocol. Every producing operation accumulates its
// result into a caller-supplied buffer through these helpers and
// returns the length the result would occupy if the buffer were
// unbounded. A nil or zero-length buffer is legal and turns the call
// into a pure measurement, enabling the measure-then-allocate pattern.
//
// Whatever fits is written; a non-empty buffer always carries a NUL
// sentinel at the end of the result or, when truncated, at its last
// byte.

// outputSized writes str at position, as far as the buffer allows, and
// returns len(str) regardless of how much was actually written.
func outputSized(buffer []byte, position int, str string) int {
	if position < len(buffer) {
		copy(buffer[position:], str)
	}
	return len(str)
}

func outputCurrent(buffer []byte, position int) int {
	return outputSized(buffer, position, ".")
}

func outputBack(buffer []byte, position int) int {
	return outputSized(buffer, position, "..")
}

func outputDot(buffer []byte, position int) int {
	return outputSized(buffer, position, ".")
}

func (s Style) outputSeparator(buffer []byte, position int) int {
	return outputSized(buffer, position, s.separators[:1])
}

// terminateOutput places the NUL sentinel. The sentinel lands at pos,
// or at the last byte of the buffer if the result was truncated.
func terminateOutput(buffer []byte, pos int) {
	if len(buffer) == 0 {
		return
	}
	if pos >= len(buffer) {
		buffer[len(buffer)-1] = 0
	} else {
		buffer[pos] = 0
	}
}

// buildString runs a buffer-producing operation twice, once to measure
// and once into an exactly sized buffer, and returns the result as a
// string.
func buildString(write func(buffer []byte) int) string {
	n := write(nil)
	buffer := make([]byte, n+1)
	write(buffer)
	return string(buffer[:n])
}
