package pipeline

import (
	"io"

	"github.com/jhbabon/scout/internal/config"
	"github.com/jhbabon/scout/internal/event"
	"github.com/jhbabon/scout/internal/render"
	"github.com/jhbabon/scout/internal/text"
)

// Outcome is what the Renderer produced once in is closed: either the
// accepted selection, or nil if the user aborted without picking one.
type Outcome struct {
	Selected *text.Text
}

// rendererState is the Renderer's accumulated view of the world, rebuilt
// incrementally from every event it sees.
type rendererState struct {
	query         string
	cursorFromEnd int
	matches       []event.Candidate
	totalLines    int
	selection     int
	offset        int
	lastTimestamp uint64
	decided       bool
	outcome       Outcome
}

// RunRenderer drains in, repainting w after every event, until in is
// closed. Once the user accepts (Done) or aborts (Exit) it stops repainting
// but keeps draining in so the upstream writers never block on a full
// channel while they wind down.
func RunRenderer(in <-chan event.Event, w io.Writer, cfg config.Config, height, width int) Outcome {
	st := &rendererState{}

	for ev := range in {
		switch ev.Kind {
		case event.Search:
			if ev.Query != st.query {
				st.selection = 0
				st.offset = 0
			}
			st.query = ev.Query
			st.cursorFromEnd = ev.CursorFromEnd
			st.lastTimestamp = ev.Timestamp

		case event.SearchResult:
			if ev.Timestamp >= st.lastTimestamp {
				st.matches = ev.Matches
				st.totalLines = ev.TotalLines
				st.lastTimestamp = ev.Timestamp
				st.clampSelection()
			}

		case event.FlushSearch:
			st.matches = ev.Matches
			st.totalLines = ev.TotalLines
			st.clampSelection()

		case event.Up:
			st.selection = selectUp(st.selection, len(st.matches))

		case event.Down:
			st.selection = selectDown(st.selection, len(st.matches))

		case event.Done:
			st.decided = true
			if st.selection >= 0 && st.selection < len(st.matches) {
				st.outcome.Selected = st.matches[st.selection].Text
			}
			continue

		case event.Exit:
			st.decided = true
			continue
		}

		if st.decided {
			continue
		}

		visible := height - 2
		if visible < 0 {
			visible = 0
		}
		st.offset = render.UpdateOffset(st.offset, st.selection, visible, len(st.matches))

		render.Render(w, cfg, render.Frame{
			Query:          st.query,
			CursorFromEnd:  st.cursorFromEnd,
			MatchedCount:   len(st.matches),
			TotalCount:     st.totalLines,
			Matches:        st.matches,
			SelectionIndex: st.selection,
			Offset:         st.offset,
			Height:         height,
			Width:          width,
		})
	}

	return st.outcome
}

func (st *rendererState) clampSelection() {
	if len(st.matches) == 0 {
		st.selection = 0
		return
	}
	if st.selection >= len(st.matches) {
		st.selection = len(st.matches) - 1
	}
}

// selectUp and selectDown wrap around the ends of the match list, so
// pressing up at the top jumps to the bottom and vice versa.
func selectUp(idx, length int) int {
	if length == 0 {
		return 0
	}
	if idx == 0 {
		return length - 1
	}
	return idx - 1
}

func selectDown(idx, length int) int {
	if length == 0 {
		return 0
	}
	if idx == length-1 {
		return 0
	}
	return idx + 1
}
