package pipeline

import (
	"bufio"
	"io"

	"github.com/jhbabon/scout/internal/event"
	"github.com/jhbabon/scout/internal/text"
)

// flushInterval is how many ingested lines pass between unprompted
// FlushSearch requests, so a slow-arriving stream keeps refreshing the
// visible matches even while the user isn't typing. Mirrors BUFFER_LIMIT's
// recommended 5000-line cadence.
const flushInterval = 5000

// Ingest reads newline-delimited candidates from r, skipping blank lines,
// and forwards each as a NewLine event followed eventually by EOF. Every
// flushInterval lines it also asks the Engine to re-score the pool it has
// accumulated so far, so a long stream feels live even between keystrokes.
// It returns any error bufio.Scanner encountered reading r (including a
// line exceeding the scan buffer), so the caller can surface it instead of
// treating a failed read as a clean, empty stream.
func Ingest(r io.Reader, out chan<- event.Event) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		out <- event.Event{Kind: event.NewLine, Line: text.Build(line)}

		count++
		if count%flushInterval == 0 {
			out <- event.Event{Kind: event.FlushSearch}
		}
	}

	out <- event.Event{Kind: event.EOF}

	return scanner.Err()
}
