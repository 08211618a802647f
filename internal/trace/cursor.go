package trace

// Cursor walks a finite trace one frame at a time. It starts before the first frame,
// so the first Next lands on frame 0. A cursor never mutates the frames it walks.
type Cursor[S any] struct {
	frames []S
	pos    int
}

func NewCursor[S any](frames []S) *Cursor[S] {
	return &Cursor[S]{frames: frames, pos: -1}
}

func (c *Cursor[S]) Len() int { return len(c.frames) }

// Pos is the current frame index, -1 before the first Next.
func (c *Cursor[S]) Pos() int { return c.pos }

// Current returns the frame under the cursor.
func (c *Cursor[S]) Current() (S, bool) {
	var zero S
	if c.pos < 0 || c.pos >= len(c.frames) {
		return zero, false
	}
	return c.frames[c.pos], true
}

// Next advances one frame and reports whether a frame is now current.
func (c *Cursor[S]) Next() bool {
	if c.pos >= len(c.frames)-1 {
		c.pos = len(c.frames) - 1
		return false
	}
	c.pos++
	return true
}

// Prev steps back one frame. It never moves before frame 0.
func (c *Cursor[S]) Prev() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	return true
}

// Seek jumps to frame i.
func (c *Cursor[S]) Seek(i int) error {
	if i < 0 || i >= len(c.frames) {
		return InvalidArgument("seek %d outside [0, %d)", i, len(c.frames))
	}
	c.pos = i
	return nil
}

func (c *Cursor[S]) Reset() { c.pos = -1 }

// Done reports whether the last frame is current (or there are no frames).
func (c *Cursor[S]) Done() bool { return c.pos >= len(c.frames)-1 }
