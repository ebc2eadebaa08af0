package pipeline

import (
	"github.com/jhbabon/scout/internal/event"
	"github.com/jhbabon/scout/internal/fuzzy"
	"github.com/jhbabon/scout/internal/pool"
)

// RunEngine owns the candidate pool and the last query seen. It consumes
// NewLine/EOF/Search/FlushSearch events from in and emits SearchResult (or,
// for an unprompted flush or EOF, FlushSearch) events carrying the scored and
// sorted candidate list on out. It stops as soon as stop is closed, leaving
// any further sends on in unread — the pipeline is shutting down by then.
// The caller owns out and is responsible for closing it once every writer,
// including RunEngine, has returned.
func RunEngine(in <-chan event.Event, stop <-chan struct{}, out chan<- event.Event) {
	p := pool.New()
	var query *fuzzy.Query
	var lastTimestamp uint64

	for {
		select {
		case <-stop:
			return

		case ev := <-in:
			switch ev.Kind {
			case event.NewLine:
				p.Push(ev.Line)

			case event.EOF:
				// Ingestion is over: one last unprompted pass so lines that
				// arrived since the previous flush become visible.
				out <- event.Event{
					Kind:       event.FlushSearch,
					Timestamp:  lastTimestamp,
					Matches:    score(query, p),
					TotalLines: p.Len(),
				}

			case event.Search:
				query = fuzzy.NewQuery(ev.Query)
				lastTimestamp = ev.Timestamp
				out <- event.Event{
					Kind:       event.SearchResult,
					Timestamp:  lastTimestamp,
					Matches:    score(query, p),
					TotalLines: p.Len(),
				}

			case event.FlushSearch:
				out <- event.Event{
					Kind:       event.FlushSearch,
					Timestamp:  lastTimestamp,
					Matches:    score(query, p),
					TotalLines: p.Len(),
				}
			}
		}
	}
}

// score rescans the whole pool against query, returning sorted Candidates.
// A nil query (nothing typed yet) matches every line with a zero score, so
// the pool's insertion order is preserved.
func score(query *fuzzy.Query, p *pool.Pool) []event.Candidate {
	items := p.Items()

	if query == nil {
		out := make([]event.Candidate, len(items))
		for i, t := range items {
			out[i] = event.Candidate{Text: t}
		}
		return out
	}

	candidates := make([]fuzzy.Candidate, 0, len(items))
	for _, t := range items {
		if c, ok := fuzzy.Score(query, t); ok {
			candidates = append(candidates, c)
		}
	}
	fuzzy.SortCandidates(candidates)

	out := make([]event.Candidate, len(candidates))
	for i, c := range candidates {
		out[i] = event.Candidate{Text: c.Text, Matches: c.Matches}
	}
	return out
}
