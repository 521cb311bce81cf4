// meta/meta.go
package meta

// DefaultSize is the board size used when none is given.
const DefaultSize = 3

// DefaultMaxDepth searches a 3×3 board to the end.
const DefaultMaxDepth = 9

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 20

// MAX_MOVES bounds a game driven by the local engine. Boards larger than
// 8×8 are cut off before they fill.
const MAX_MOVES = 64
