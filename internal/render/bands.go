package render

// Band is a contiguous range of image rows, Start inclusive and End
// exclusive, processed as one unit of work.
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// SplitBands partitions the rows [0, rows) into count contiguous bands.
// Sizes are as even as integer division allows; when rows does not divide
// evenly the first rows%count bands carry one extra row. count is clamped
// to [1, rows], so every returned band holds at least one row.
//
// Together the bands cover every row exactly once. That disjointness is
// what lets bands fill their slices of a shared buffer concurrently
// without locking.
func SplitBands(rows, count int) []Band {
	if count < 1 {
		count = 1
	}
	if count > rows {
		count = rows
	}

	size := rows / count
	rem := rows % count

	bands := make([]Band, 0, count)
	start := 0
	for i := 0; i < count; i++ {
		n := size
		if i < rem {
			n++
		}
		bands = append(bands, Band{Start: start, End: start + n})
		start += n
	}
	return bands
}
