package pipeline

import (
	"testing"
	"time"

	"github.com/jhbabon/scout/internal/event"
	"github.com/jhbabon/scout/internal/text"
)

func runEngineForTest(t *testing.T) (in chan event.Event, out chan event.Event, stop chan struct{}, done chan struct{}) {
	in = make(chan event.Event, 16)
	out = make(chan event.Event, 16)
	stop = make(chan struct{})
	done = make(chan struct{})

	go func() {
		RunEngine(in, stop, out)
		close(done)
	}()

	t.Cleanup(func() {
		select {
		case <-stop:
		default:
			close(stop)
		}
		<-done
	})

	return in, out, stop, done
}

func TestEngineScoresAgainstQuery(t *testing.T) {
	in, out, _, _ := runEngineForTest(t)

	in <- event.Event{Kind: event.NewLine, Line: text.Build("filter")}
	in <- event.Event{Kind: event.NewLine, Line: text.Build("Cargofile")}
	in <- event.Event{Kind: event.Search, Query: "file", Timestamp: 1}

	select {
	case result := <-out:
		if result.Kind != event.SearchResult {
			t.Fatalf("Kind = %v, want SearchResult", result.Kind)
		}
		if len(result.Matches) != 2 {
			t.Fatalf("len(Matches) = %d, want 2", len(result.Matches))
		}
		if result.Matches[0].Text.String() != "Cargofile" {
			t.Errorf("top match = %q, want %q", result.Matches[0].Text.String(), "Cargofile")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for SearchResult")
	}
}

func TestEngineFlushSearchReusesLastQuery(t *testing.T) {
	in, out, _, _ := runEngineForTest(t)

	in <- event.Event{Kind: event.NewLine, Line: text.Build("alpha")}
	in <- event.Event{Kind: event.Search, Query: "alpha", Timestamp: 1}
	<-out

	in <- event.Event{Kind: event.NewLine, Line: text.Build("alphabet")}
	in <- event.Event{Kind: event.FlushSearch}

	select {
	case result := <-out:
		if result.Kind != event.FlushSearch {
			t.Fatalf("Kind = %v, want FlushSearch", result.Kind)
		}
		if len(result.Matches) != 2 {
			t.Errorf("len(Matches) = %d, want 2 after the pool grew", len(result.Matches))
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for FlushSearch result")
	}
}

func TestEngineStopsWhenStopClosed(t *testing.T) {
	in, _, stop, done := runEngineForTest(t)
	_ = in

	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunEngine did not return after stop was closed")
	}
}
