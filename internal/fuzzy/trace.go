package fuzzy

// Movement records which cell a dynamic-programming traceback step came
// from, so the best-scoring path's subject indices can be recovered after
// the fact.
type Movement int

const (
	Stop Movement = iota
	Diagonal
	Left
	Up
)

// TraceMatrix mirrors a scoring matrix with the Movement that produced each
// cell's score, so Traceback can walk backward from the best cell to the
// list of subject positions that contributed to it.
type TraceMatrix struct {
	columns int
	rows    int
	matrix  []Movement
}

// NewTraceMatrix allocates a rows x columns matrix of Stop movements.
func NewTraceMatrix(rows, columns int) *TraceMatrix {
	return &TraceMatrix{
		columns: columns,
		rows:    rows,
		matrix:  make([]Movement, rows*columns),
	}
}

func (tm *TraceMatrix) index(y, x int) int {
	return y*tm.columns + x
}

// Set records the movement that produced the cell at (y, x).
func (tm *TraceMatrix) Set(y, x int, m Movement) {
	tm.matrix[tm.index(y, x)] = m
}

// At returns the movement recorded for (y, x).
func (tm *TraceMatrix) At(y, x int) Movement {
	return tm.matrix[tm.index(y, x)]
}

// Traceback walks backward from (y, x) following Diagonal movements,
// collecting the subject column of each diagonal step; Left and Up steps move
// one column or row back without collecting. It stops at the first Stop
// movement or the matrix edge.
func (tm *TraceMatrix) Traceback(y, x int) []int {
	var matches []int

	for y >= 0 && x >= 0 {
		switch tm.At(y, x) {
		case Diagonal:
			matches = append(matches, x)
			y--
			x--
		case Left:
			x--
		case Up:
			y--
		case Stop:
			y = -1
			x = -1
		}
	}

	// matches were collected back-to-front; reverse in place.
	for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
		matches[i], matches[j] = matches[j], matches[i]
	}

	return matches
}
