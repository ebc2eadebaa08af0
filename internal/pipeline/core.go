// Package pipeline wires the four concurrent tasks that make up a scout
// run — Ingester, KeyReader, Engine, Renderer — over bounded channels
// carrying event.Event, and owns their startup and shutdown order.
package pipeline

import (
	"io"
	"sync"

	"github.com/jhbabon/scout/internal/config"
	"github.com/jhbabon/scout/internal/event"
	"github.com/jhbabon/scout/internal/prompt"
	"github.com/jhbabon/scout/internal/text"
)

// ChannelCapacity bounds every inter-task channel. A bounded channel is
// what gives the pipeline backpressure: a slow Renderer throttles how fast
// the Engine can push results, which throttles how fast the Ingester can
// keep scoring relevant.
const ChannelCapacity = 1024

// Run starts all four tasks and blocks until the user accepts or aborts,
// returning the accepted line (nil if aborted).
func Run(stdin io.Reader, tty io.ReadWriter, cfg config.Config, initialQuery string, height, width int) (*text.Text, error) {
	toEngine := make(chan event.Event, ChannelCapacity)
	toRenderer := make(chan event.Event, ChannelCapacity)
	stop := make(chan struct{})

	p := prompt.New(initialQuery)

	ingestErr := make(chan error, 1)
	go func() {
		ingestErr <- Ingest(stdin, toEngine)
	}()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		ReadKeys(tty, toEngine, toRenderer, p)
		close(stop)
	}()

	go func() {
		defer wg.Done()
		RunEngine(toEngine, stop, toRenderer)
	}()

	if initialQuery != "" {
		toEngine <- event.Event{Kind: event.Search, Query: p.Text(), CursorFromEnd: p.CursorUntilEnd(), Timestamp: p.Timestamp()}
		toRenderer <- event.Event{Kind: event.Search, Query: p.Text(), CursorFromEnd: p.CursorUntilEnd(), Timestamp: p.Timestamp()}
	}

	go func() {
		wg.Wait()
		close(toRenderer)
	}()

	outcome := RunRenderer(toRenderer, tty, cfg, height, width)

	select {
	case err := <-ingestErr:
		if err != nil {
			return outcome.Selected, err
		}
	default:
		// Ingestion was still in flight when the user decided; its error,
		// if any, is moot now that the run is over.
	}

	return outcome.Selected, nil
}
