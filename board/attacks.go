package board

import "fmt"

// Precomputed attack data, built once during package initialization and
// immutable afterwards. The tables are safely shared, read-only, by any
// number of concurrent readers; package init gives the required
// happens-before edge without further synchronization.

// Sliding directions as (row, col) deltas.
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// Static per-square attack masks.
var (
	kingAttacks   [64]Bitboard
	knightAttacks [64]Bitboard
	// pawnAttacks[sq] holds the squares an opponent pawn would attack sq
	// from, i.e. the two squares diagonally above sq.
	pawnAttacks [64]Bitboard
	// Empty-board attack sets for the sliders, used for cheap "is any
	// attacker even on a relevant line" pre-tests.
	rookRays   [64]Bitboard
	bishopRays [64]Bitboard
)

// magicEntry holds the magic lookup parameters for one square.
type magicEntry struct {
	mask    Bitboard   // relevant occupancy mask
	magic   uint64     // magic multiplier
	shift   uint8      // 64 minus the mask population
	attacks []Bitboard // slice into the shared attack table
}

var (
	rookMagicTable   [64]magicEntry
	bishopMagicTable [64]magicEntry

	// Shared attack storage. The sizes are the sums over all squares of
	// 2^k, k being the relevant occupancy mask population.
	rookAttackTable   [102400]Bitboard
	bishopAttackTable [5248]Bitboard
)

// Magic multipliers, found by trial and error with a random number
// generator such that the relevant occupancy bits suffice to index the
// attack tables with only constructive collisions. Verified at build time.
var rookMagics = [64]uint64{
	0x088000102088C001, 0x10C0200040001000, 0x83001041000B2000, 0x0680280080041000,
	0x488004000A080080, 0x0100180400010002, 0x040001C401021008, 0x02000C04A980C302,
	0x0000800040082084, 0x5020C00820025000, 0x0001002001044012, 0x0402001020400A00,
	0x00C0800800040080, 0x4028800200040080, 0x00A0804200802500, 0x8004800040802100,
	0x0080004000200040, 0x1082810020400100, 0x0020004010080040, 0x2004818010042800,
	0x0601010008005004, 0x4600808002001400, 0x0010040009180210, 0x020412000406C091,
	0x040084228000C000, 0x8000810100204000, 0x0084110100402000, 0x0046001A00204210,
	0x2001040080080081, 0x0144020080800400, 0x0840108400080229, 0x0480308A0000410C,
	0x0460324002800081, 0x620080A001804000, 0x2800802000801006, 0x0002809000800800,
	0x4C09040080802800, 0x4808800C00800200, 0x0200311004001802, 0x0400008402002141,
	0x0410800140008020, 0x000080C001050020, 0x004080204A020010, 0x0224201001010038,
	0x0109001108010004, 0x0282004844020010, 0x8228180110040082, 0x0001000080C10002,
	0x024000C120801080, 0x0001406481060200, 0x0101243200418600, 0x0108800800100080,
	0x4022080100100D00, 0x0000843040600801, 0x8301000200CC0500, 0x1000004500840200,
	0x1100104100800069, 0x2001008440001021, 0x2002008830204082, 0x0010145000082101,
	0x01A2001004200842, 0x1007000608040041, 0x000A08100203028C, 0x02D4048040290402,
}

var bishopMagics = [64]uint64{
	0x0008201802242020, 0x0021040424806220, 0x4006360602013080, 0x0004410020408002,
	0x2102021009001140, 0x08C2021004000001, 0x6001031120200820, 0x1018310402201410,
	0x401CE00210820484, 0x001029D001004100, 0x2C00101080810032, 0x0000082581000010,
	0x10000A0210110020, 0x200002016C202000, 0x0201018821901000, 0x006A0300420A2100,
	0x0010014005450400, 0x1008C12008028280, 0x00010010004A0040, 0x3000820802044020,
	0x0000800405A02820, 0x8042004300420240, 0x10060801210D2000, 0x0210840500511061,
	0x0008142118509020, 0x0021109460040104, 0x00A1480090019030, 0x0102008808008020,
	0x884084000880E001, 0x040041020A030100, 0x3000810104110805, 0x04040A2006808440,
	0x0044040404C01100, 0x4122B80800245004, 0x0044020502380046, 0x0100400888020200,
	0x01C0002060020080, 0x4008811100021001, 0x8208450441040609, 0x0408004900008088,
	0x0294212051220882, 0x000041080810E062, 0x10480A018E005000, 0x80400A0204201600,
	0x2800200204100682, 0x0020200400204441, 0x0A500600A5002400, 0x801602004A010100,
	0x0801841008040880, 0x10010880C4200028, 0x0400004424040000, 0x0401000142022100,
	0x00A00010020A0002, 0x1010400204010810, 0x0829910400840000, 0x0004235204010080,
	0x1002008143082000, 0x11840044440C2080, 0x2802A02104030440, 0x6100000900840401,
	0x1C20A15A90420200, 0x0088414004480280, 0x0000204242881100, 0x0240080802809010,
}

func init() {
	buildStaticTables()
	if err := buildMagicTables(); err != nil {
		panic(err)
	}
}

// buildStaticTables fills the king, knight, pawn and empty-board ray masks.
func buildStaticTables() {
	kingDeltas := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightDeltas := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	for sq := Square(0); sq < 64; sq++ {
		row, col := sq.Row(), sq.Col()
		for _, d := range kingDeltas {
			if validCoords(row+d[0], col+d[1]) {
				kingAttacks[sq].Set(SquareFromCoords(row+d[0], col+d[1]))
			}
		}
		for _, d := range knightDeltas {
			if validCoords(row+d[0], col+d[1]) {
				knightAttacks[sq].Set(SquareFromCoords(row+d[0], col+d[1]))
			}
		}
		for _, d := range [2]int{-1, 1} {
			if validCoords(row+1, col+d) {
				pawnAttacks[sq].Set(SquareFromCoords(row+1, col+d))
			}
		}
		rookRays[sq] = slidingAttacks(sq, 0, &rookDirections)
		bishopRays[sq] = slidingAttacks(sq, 0, &bishopDirections)
	}
}

// slidingAttacks ray-casts from sq in every direction, stopping at (and
// including) the first occupied square.
func slidingAttacks(sq Square, occupancy Bitboard, directions *[4][2]int) Bitboard {
	var attacks Bitboard
	for _, d := range directions {
		row, col := sq.Row(), sq.Col()
		for {
			row += d[0]
			col += d[1]
			if !validCoords(row, col) {
				break
			}
			destination := SquareFromCoords(row, col)
			attacks.Set(destination)
			if occupancy.Get(destination) {
				break
			}
		}
	}
	return attacks
}

// relevantOccupancyMask computes the squares whose occupancy can change the
// attack set of a slider on sq: each ray excluding the final edge square,
// since an occupant there has nothing further to block.
func relevantOccupancyMask(sq Square, directions *[4][2]int) Bitboard {
	var mask Bitboard
	for _, d := range directions {
		row, col := sq.Row(), sq.Col()
		for {
			row += d[0]
			col += d[1]
			if !validCoords(row+d[0], col+d[1]) {
				break
			}
			mask.Set(SquareFromCoords(row, col))
		}
	}
	return mask
}

// buildMagicTables fills the magic lookup structures for both slider
// families. Every shipped magic constant is verified while the table is
// populated: two occupancies mapping to the same slot must produce the same
// attack set, otherwise the constant table is broken and an error is
// returned. Package init treats that error as fatal.
func buildMagicTables() error {
	if err := buildMagicFamily(&rookMagicTable, rookAttackTable[:], &rookMagics, &rookDirections); err != nil {
		return err
	}
	return buildMagicFamily(&bishopMagicTable, bishopAttackTable[:], &bishopMagics, &bishopDirections)
}

func buildMagicFamily(table *[64]magicEntry, storage []Bitboard, magics *[64]uint64, directions *[4][2]int) error {
	offset := 0
	for sq := Square(0); sq < 64; sq++ {
		mask := relevantOccupancyMask(sq, directions)
		maskBits := mask.Count()
		entries := 1 << uint(maskBits)

		entry := &table[sq]
		entry.mask = mask
		entry.magic = magics[sq]
		entry.shift = uint8(64 - maskBits)
		entry.attacks = storage[offset : offset+entries]

		// Clear the slice first; a zero attack set marks an unused slot
		// (a slider always attacks at least one square).
		for i := range entry.attacks {
			entry.attacks[i] = 0
		}

		// Cache the mask squares so subset enumeration can address them
		// by bit position.
		maskSquares := make([]Square, 0, maskBits)
		for rest := mask; rest != 0; {
			maskSquares = append(maskSquares, rest.PopLSB())
		}

		for subset := 0; subset < entries; subset++ {
			var occupancy Bitboard
			for bit, occSq := range maskSquares {
				occupancy.SetIf(occSq, subset&(1<<uint(bit)) != 0)
			}
			attacks := slidingAttacks(sq, occupancy, directions)

			index := (uint64(occupancy) * entry.magic) >> entry.shift
			if existing := entry.attacks[index]; existing != 0 && existing != attacks {
				return fmt.Errorf("magic collision on square %v: occupancy %#x", sq, uint64(occupancy))
			}
			entry.attacks[index] = attacks
		}
		offset += entries
	}
	return nil
}

// rookAttacksFor returns the exact rook attack set for the square given the
// full board occupancy, in O(1).
func rookAttacksFor(sq Square, occupancy Bitboard) Bitboard {
	entry := &rookMagicTable[sq]
	index := (uint64(occupancy&entry.mask) * entry.magic) >> entry.shift
	return entry.attacks[index]
}

// bishopAttacksFor returns the exact bishop attack set for the square given
// the full board occupancy, in O(1).
func bishopAttacksFor(sq Square, occupancy Bitboard) Bitboard {
	entry := &bishopMagicTable[sq]
	index := (uint64(occupancy&entry.mask) * entry.magic) >> entry.shift
	return entry.attacks[index]
}
