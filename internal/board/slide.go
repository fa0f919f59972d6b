package board

// RowResult is the outcome of sliding a single row to the left.
type RowResult struct {
	Row   [Size]int
	Score int
}

// MoveResult pairs the board after a move with the score gained by it.
type MoveResult struct {
	Board Board
	Score int
}

// SlideRow slides one row towards index 0 and merges equal neighbours.
//
// Zeros are removed first, then a single left-to-right pass merges each
// pair of equal adjacent tiles. A tile produced by a merge is not compared
// again in the same pass, so [2,2,2,0] becomes [4,2,0,0], not [4,4,0,0].
// The row is then compacted and padded with zeros.
func SlideRow(row [Size]int) RowResult {
	tiles := compact(row[:])

	score := 0
	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i] != 0 && tiles[i] == tiles[i+1] {
			tiles[i] *= 2
			tiles[i+1] = 0
			score += tiles[i]
			i++ // the right tile was consumed
		}
	}

	var out [Size]int
	copy(out[:], compact(tiles))
	return RowResult{Row: out, Score: score}
}

// compact returns the non-zero values in order.
func compact(values []int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

func reverse(row [Size]int) [Size]int {
	for i, j := 0, Size-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
	return row
}

// SlideLeft slides every row left.
func SlideLeft(b Board) MoveResult {
	res := MoveResult{Board: b}
	for r := range Size {
		rr := SlideRow(b[r])
		res.Board[r] = rr.Row
		res.Score += rr.Score
	}
	return res
}

// SlideRight slides every row right by reversing it around SlideRow.
func SlideRight(b Board) MoveResult {
	res := MoveResult{Board: b}
	for r := range Size {
		rr := SlideRow(reverse(b[r]))
		res.Board[r] = reverse(rr.Row)
		res.Score += rr.Score
	}
	return res
}

// SlideUp slides every column towards row 0.
func SlideUp(b Board) MoveResult {
	res := MoveResult{Board: b}
	for c := range Size {
		rr := SlideRow(b.Column(c))
		res.Board = res.Board.SetColumn(c, rr.Row)
		res.Score += rr.Score
	}
	return res
}

// SlideDown slides every column towards the last row.
func SlideDown(b Board) MoveResult {
	res := MoveResult{Board: b}
	for c := range Size {
		rr := SlideRow(reverse(b.Column(c)))
		res.Board = res.Board.SetColumn(c, reverse(rr.Row))
		res.Score += rr.Score
	}
	return res
}

// Slide performs a move in the given direction.
// An unknown direction leaves the board as is.
func Slide(b Board, dir Direction) MoveResult {
	switch dir {
	case Left:
		return SlideLeft(b)
	case Right:
		return SlideRight(b)
	case Up:
		return SlideUp(b)
	case Down:
		return SlideDown(b)
	default:
		return MoveResult{Board: b}
	}
}
