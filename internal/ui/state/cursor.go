package state

// MoveCursorNext moves the cursor by dir (+1 or -1) to the next interactive
// row, wrapping around. It reports whether the cursor moved.
func (l *Level) MoveCursorNext(dir int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	if dir == 0 {
		dir = 1
	}
	start := l.Cursor
	if start < 0 || start >= n {
		start = 0
		if dir < 0 {
			start = n - 1
		}
		if l.Items[start].Interactive() {
			l.Cursor = start
			return true
		}
	}
	for step := 1; step <= n; step++ {
		idx := ((start+dir*step)%n + n) % n
		if l.Items[idx].Interactive() {
			moved := idx != l.Cursor
			l.Cursor = idx
			return moved
		}
	}
	return false
}

// MoveCursorHome moves the cursor to the first row.
func (l *Level) MoveCursorHome() bool {
	return l.jump(0)
}

// MoveCursorEnd moves the cursor to the last row.
func (l *Level) MoveCursorEnd() bool {
	return l.jump(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.jump(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	return l.jump(l.Cursor + l.pageSize(maxVisible))
}

func (l *Level) jump(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(idx, 0, len(l.Items)-1)
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		maxVisible = total
	}
	if maxVisible < 1 {
		return 1
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor > l.ViewportOffset+maxVisible-1 {
		l.ViewportOffset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
