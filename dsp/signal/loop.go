package signal

// Loop replays a planar buffer endlessly, one block at a time. It is the
// source behind the real-time monitor.
type Loop struct {
	data [][]float64
	pos  int
}

// NewLoop wraps data. All channels must have the same, non-zero length;
// shorter channels are read as silence past their end.
func NewLoop(data [][]float64) *Loop {
	return &Loop{data: data}
}

// Channels returns the channel count.
func (l *Loop) Channels() int { return len(l.data) }

// Len returns the loop length in frames.
func (l *Loop) Len() int {
	if len(l.data) == 0 {
		return 0
	}

	return len(l.data[0])
}

// Fill copies the next frames into dst, wrapping at the end of the loop.
// dst must have Channels() slices; the frame count is len(dst[0]).
func (l *Loop) Fill(dst [][]float64) {
	n := l.Len()
	if n == 0 || len(dst) == 0 {
		for _, ch := range dst {
			clear(ch)
		}

		return
	}

	frames := len(dst[0])
	for i := 0; i < frames; i++ {
		for ch := range dst {
			var v float64
			if ch < len(l.data) && l.pos < len(l.data[ch]) {
				v = l.data[ch][l.pos]
			}

			dst[ch][i] = v
		}

		l.pos++
		if l.pos == n {
			l.pos = 0
		}
	}
}
