package board

// Castling records the remaining castling possibilities of both sides, from
// the perspective of the side to move ("we"). Instead of assuming corner
// rooks, it stores the starting file of each castle-capable rook, so
// positions with non-standard rook placement castle correctly. Both sides
// share the same rook files.
type Castling struct {
	weOO    bool // our kingside (short) castling
	weOOO   bool // our queenside (long) castling
	theyOO  bool
	theyOOO bool

	queensideRookFile int
	kingsideRookFile  int
}

// NewCastling returns a record with no rights and the standard corner files.
func NewCastling() Castling {
	return Castling{queensideRookFile: fileA, kingsideRookFile: fileH}
}

// The read accessors take value receivers so they can be called directly on
// a Castling returned by value, e.g. b.CastlingRights().WeCanCastleKingside().
func (c Castling) WeCanCastleKingside() bool    { return c.weOO }
func (c Castling) WeCanCastleQueenside() bool   { return c.weOOO }
func (c Castling) TheyCanCastleKingside() bool  { return c.theyOO }
func (c Castling) TheyCanCastleQueenside() bool { return c.theyOOO }

func (c *Castling) setWeCanCastleKingside()    { c.weOO = true }
func (c *Castling) setWeCanCastleQueenside()   { c.weOOO = true }
func (c *Castling) setTheyCanCastleKingside()  { c.theyOO = true }
func (c *Castling) setTheyCanCastleQueenside() { c.theyOOO = true }

func (c *Castling) resetWeCanCastleKingside()    { c.weOO = false }
func (c *Castling) resetWeCanCastleQueenside()   { c.weOOO = false }
func (c *Castling) resetTheyCanCastleKingside()  { c.theyOO = false }
func (c *Castling) resetTheyCanCastleQueenside() { c.theyOOO = false }

// QueensideRook returns the starting file of the queenside rooks.
func (c Castling) QueensideRook() int { return c.queensideRookFile }

// KingsideRook returns the starting file of the kingside rooks.
func (c Castling) KingsideRook() int { return c.kingsideRookFile }

// setRookFiles records the starting files of the castle-capable rooks.
func (c *Castling) setRookFiles(queenside, kingside int) {
	c.queensideRookFile = queenside
	c.kingsideRookFile = kingside
}

// hasAny reports whether any castling right remains.
func (c Castling) hasAny() bool {
	return c.weOO || c.weOOO || c.theyOO || c.theyOOO
}

// Mirror swaps our and their rights. The rook files are shared between the
// sides and stay as they are.
func (c *Castling) Mirror() {
	c.weOO, c.theyOO = c.theyOO, c.weOO
	c.weOOO, c.theyOOO = c.theyOOO, c.weOOO
}

// String returns the FEN castling token, treating "we" as white. Standard
// corner rooks produce the conventional KQkq letters; any other rook file
// produces explicit file letters (Shredder notation).
func (c Castling) String() string {
	if !c.hasAny() {
		return "-"
	}
	standard := c.queensideRookFile == fileA && c.kingsideRookFile == fileH
	kingside := byte('k')
	queenside := byte('q')
	if !standard {
		kingside = byte('a' + c.kingsideRookFile)
		queenside = byte('a' + c.queensideRookFile)
	}
	buf := make([]byte, 0, 4)
	if c.weOO {
		buf = append(buf, kingside-'a'+'A')
	}
	if c.weOOO {
		buf = append(buf, queenside-'a'+'A')
	}
	if c.theyOO {
		buf = append(buf, kingside)
	}
	if c.theyOOO {
		buf = append(buf, queenside)
	}
	return string(buf)
}
