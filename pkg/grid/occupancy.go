package grid

// Occupancy tracks which grid cells are claimed by defined regions.
// Claims are never rolled back: overlap is reported to the caller, not
// treated as an error, so deliberately stacked regions stay possible.
type Occupancy struct {
	cols    int
	rows    int
	claimed map[int]bool
}

// NewOccupancy returns an empty tracker for a cols x rows grid.
func NewOccupancy(cols, rows int) *Occupancy {
	return &Occupancy{
		cols:    cols,
		rows:    rows,
		claimed: make(map[int]bool),
	}
}

// Cells lists every cell index covered by the span in row-major order,
// index = row*cols + col.
func (o *Occupancy) Cells(s Span) []int {
	cells := make([]int, 0, (s.RowUp-s.RowLow+1)*(s.ColUp-s.ColLow+1))
	for row := s.RowLow; row <= s.RowUp; row++ {
		for col := s.ColLow; col <= s.ColUp; col++ {
			cells = append(cells, row*o.cols+col)
		}
	}
	return cells
}

// Claim records every cell covered by the span and returns the indices
// that were already taken. Already-taken cells are not re-added.
func (o *Occupancy) Claim(s Span) []int {
	var conflicts []int
	for _, cell := range o.Cells(s) {
		if o.claimed[cell] {
			conflicts = append(conflicts, cell)
			continue
		}
		o.claimed[cell] = true
	}
	return conflicts
}

// FreeCell returns the column and row of the lowest-index unclaimed
// cell, or ok=false when every cell is taken.
func (o *Occupancy) FreeCell() (col, row int, ok bool) {
	for idx := 0; idx < o.cols*o.rows; idx++ {
		if !o.claimed[idx] {
			return idx % o.cols, idx / o.cols, true
		}
	}
	return 0, 0, false
}

// Claimed reports how many cells are currently taken.
func (o *Occupancy) Claimed() int {
	return len(o.claimed)
}
