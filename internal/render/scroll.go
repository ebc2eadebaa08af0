package render

// UpdateOffset recomputes the scroll offset so selection stays within the
// visible window [offset, offset+visibleLines). It only ever moves the
// offset the minimum amount needed to bring selection back into view,
// mirroring the original's scroll() rather than re-centering every time.
func UpdateOffset(offset, selection, visibleLines, totalLines int) int {
	if visibleLines <= 0 {
		return offset
	}

	lastPosition := (visibleLines + offset) - 1
	if lastPosition > totalLines-1 {
		lastPosition = totalLines - 1
	}

	switch {
	case selection > lastPosition:
		offset += selection - lastPosition
	case selection < offset:
		offset -= offset - selection
	}

	if offset < 0 {
		offset = 0
	}

	maxOffset := totalLines - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
