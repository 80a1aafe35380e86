package chessmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedRecord is returned by ParseFEN for text that is not a valid position.
var ErrMalformedRecord = errors.New("malformed position record")

// pieceFromChar converts a FEN character to a side and kind.
func pieceFromChar(ch byte) (Color, PieceType, bool) {
	side := White
	if ch >= 'a' && ch <= 'z' {
		side = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return side, Pawn, true
	case 'N':
		return side, Knight, true
	case 'B':
		return side, Bishop, true
	case 'R':
		return side, Rook, true
	case 'Q':
		return side, Queen, true
	case 'K':
		return side, King, true
	}
	return White, NoPieceType, false
}

// charFromPiece converts a piece to its FEN character.
func charFromPiece(side Color, kind PieceType) byte {
	ch := pieceLetters[kind]
	if side == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// LoadFEN builds a board from a FEN record without ever failing: unknown
// characters are skipped, missing fields take their usual defaults and
// unreadable counters become zero.
func LoadFEN(fen string) Board {
	var b Board
	fields := strings.Fields(fen)
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	row, col := 7, 0
	for i := 0; i < len(field(0)); i++ {
		ch := field(0)[i]
		switch {
		case ch == '/':
			row--
			col = 0
		case ch >= '1' && ch <= '8':
			col += int(ch - '0')
		default:
			side, kind, ok := pieceFromChar(ch)
			if !ok {
				continue
			}
			if row >= 0 && col < 8 {
				b.SetPiece(SquareAt(row, col), side, kind)
			}
			col++
		}
	}

	if field(1) == "b" {
		b.side = Black
	}
	b.castling = parseCastling(field(2))
	if sq, ok := ParseSquare(field(3)); ok {
		// The target belongs to the side that just moved.
		b.enPassant[b.side.Other()] = sq.Bit()
	}
	b.halfmove, b.fullmove = 0, 1
	if s := field(4); s != "" {
		b.halfmove, _ = strconv.Atoi(s)
	}
	if s := field(5); s != "" {
		b.fullmove, _ = strconv.Atoi(s)
	}
	b.deriveKingMoved()
	return b
}

// ParseFEN parses a FEN string and rejects anything LoadFEN would have to guess
// about. Errors wrap ErrMalformedRecord.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, fmt.Errorf("%w: %d fields, want at least 4", ErrMalformedRecord, len(fields))
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: %d ranks", ErrMalformedRecord, len(ranks))
	}
	for i, rank := range ranks {
		n := 0
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch >= '1' && ch <= '8' {
				n += int(ch - '0')
				continue
			}
			if _, _, ok := pieceFromChar(ch); !ok {
				return Board{}, fmt.Errorf("%w: unrecognized piece %q", ErrMalformedRecord, ch)
			}
			n++
		}
		if n != 8 {
			return Board{}, fmt.Errorf("%w: rank %d has %d columns", ErrMalformedRecord, 8-i, n)
		}
	}
	if fields[1] != "w" && fields[1] != "b" {
		return Board{}, fmt.Errorf("%w: side to move %q", ErrMalformedRecord, fields[1])
	}
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			if !strings.ContainsRune("KQkq", ch) {
				return Board{}, fmt.Errorf("%w: castling field %q", ErrMalformedRecord, fields[2])
			}
		}
	}
	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok || (sq.Row() != 2 && sq.Row() != 5) {
			return Board{}, fmt.Errorf("%w: en passant square %q", ErrMalformedRecord, fields[3])
		}
	}
	for _, f := range fields[4:min(len(fields), 6)] {
		if _, err := strconv.Atoi(f); err != nil {
			return Board{}, fmt.Errorf("%w: move counter %q", ErrMalformedRecord, f)
		}
	}

	b := LoadFEN(fen)
	for c := White; c <= Black; c++ {
		if n := PopCount(b.pieces[c][King]); n != 1 {
			return Board{}, fmt.Errorf("%w: %s has %d kings", ErrMalformedRecord, c, n)
		}
	}
	return b, nil
}

func parseCastling(s string) CastlingRights {
	var r CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			r |= CastlingWhiteK
		case 'Q':
			r |= CastlingWhiteQ
		case 'k':
			r |= CastlingBlackK
		case 'q':
			r |= CastlingBlackQ
		}
	}
	return r
}

// deriveKingMoved marks a king as moved when it is off its home square.
func (b *Board) deriveKingMoved() {
	for c := White; c <= Black; c++ {
		home := castlePaths[c][KingSide].kingFrom
		b.kingMoved[c] = b.pieces[c][King]&home.Bit() == 0
	}
}

// FEN serializes the board.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			side, kind, ok := b.PieceAt(SquareAt(row, col))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(side, kind))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castling == CastlingNone {
		sb.WriteByte('-')
	} else {
		for i, ch := range "KQkq" {
			if b.castling&(1<<uint(i)) != 0 {
				sb.WriteRune(ch)
			}
		}
	}

	sb.WriteByte(' ')
	if ep := b.enPassant[White] | b.enPassant[Black]; ep != 0 {
		sb.WriteString(Square(LSB(ep)).String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmove, b.fullmove)
	return sb.String()
}
