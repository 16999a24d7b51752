package board

// Square indexes a board position in [0, 64). Rank = sq/8 with rank 0 being
// rank "1", file = sq%8 with file 0 being the a-file.
type Square int

// NoSquare marks the absence of a square (empty en-passant slot, exhausted
// bitboard iteration).
const NoSquare Square = -1

const (
	NumSquares = 64
	NumFiles   = 8
	NumRanks   = 8
)

// Direction indexes the 8 ray directions. The order must match
// directionOffsets exactly; slider generation pairs edgeDistance[sq][d]
// with directionOffsets[d] and a mismatch silently produces wrong moves.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	SouthEast
	NorthWest
	SouthWest
	numDirections
)

var directionOffsets = [numDirections]int{8, -8, 1, -1, 9, -7, 7, -9}

// edgeDistance[sq][d] is the number of squares between sq and the board edge
// in direction d; 0 means sq sits on that edge.
var edgeDistance [NumSquares][numDirections]int

// knightOffsets are the linear deltas of the 8 knight moves. Candidates that
// wrap around a board edge are rejected by the file-delta guard when the
// target tables are built.
var knightOffsets = [8]int{6, 10, 15, 17, -6, -10, -15, -17}

// Per-square attack tables, built once at package init so move generation
// never recomputes offset geometry.
var (
	knightTargets [NumSquares]Bitboard
	kingTargets   [NumSquares]Bitboard
	pawnCaptures  [2][NumSquares]Bitboard // [team][sq], diagonal-forward squares
)

func init() {
	for sq := Square(0); sq < NumSquares; sq++ {
		rank := RankOf(sq)
		file := FileOf(sq)

		top := 7 - rank
		bottom := rank
		right := 7 - file
		left := file

		edgeDistance[sq] = [numDirections]int{
			top,
			bottom,
			right,
			left,
			min(top, right),
			min(bottom, right),
			min(top, left),
			min(bottom, left),
		}

		var knight Bitboard
		for _, off := range knightOffsets {
			target := sq + Square(off)
			if target < 0 || target >= NumSquares {
				continue
			}
			if fileDelta(sq, target) > 2 {
				continue
			}
			knight.Set(target, true)
		}
		knightTargets[sq] = knight

		var king Bitboard
		for d := Direction(0); d < numDirections; d++ {
			if edgeDistance[sq][d] >= 1 {
				king.Set(sq+Square(directionOffsets[d]), true)
			}
		}
		kingTargets[sq] = king

		var whiteCap, blackCap Bitboard
		if top >= 1 {
			if left >= 1 {
				whiteCap.Set(sq+7, true)
			}
			if right >= 1 {
				whiteCap.Set(sq+9, true)
			}
		}
		if bottom >= 1 {
			if left >= 1 {
				blackCap.Set(sq-9, true)
			}
			if right >= 1 {
				blackCap.Set(sq-7, true)
			}
		}
		pawnCaptures[White][sq] = whiteCap
		pawnCaptures[Black][sq] = blackCap
	}
}

// FileOf returns the file index (0 = a-file) of a square.
func FileOf(sq Square) int { return int(sq) % 8 }

// RankOf returns the rank index (0 = rank 1) of a square.
func RankOf(sq Square) int { return int(sq) / 8 }

// SquareAt returns the square at the given file and rank indices, or
// NoSquare if either is off the board.
func SquareAt(file, rank int) Square {
	if file < 0 || file >= NumFiles || rank < 0 || rank >= NumRanks {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// EdgeDistance returns the precomputed distance from sq to the board edge in
// direction d, or 0 for out-of-range input.
func EdgeDistance(sq Square, d Direction) int {
	if sq < 0 || sq >= NumSquares || d < 0 || d >= numDirections {
		return 0
	}
	return edgeDistance[sq][d]
}

// DirectionOffset returns the linear square delta of one step in direction d.
func DirectionOffset(d Direction) int {
	if d < 0 || d >= numDirections {
		return 0
	}
	return directionOffsets[d]
}

func fileDelta(a, b Square) int {
	d := FileOf(a) - FileOf(b)
	if d < 0 {
		return -d
	}
	return d
}

// NotationFromSquare converts a square index to algebraic notation
// ("g1" for square 6). Out-of-board squares report ok=false.
func NotationFromSquare(sq Square) (string, bool) {
	if sq < 0 || sq >= NumSquares {
		return "", false
	}
	return string([]byte{'a' + byte(FileOf(sq)), '1' + byte(RankOf(sq))}), true
}

// SquareFromNotation converts algebraic notation back to a square index.
// Empty, malformed, or out-of-board strings report ok=false.
func SquareFromNotation(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq := SquareAt(file, rank)
	if sq == NoSquare {
		return NoSquare, false
	}
	return sq, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
