package core

// Neighbor slot indices, row-major over the 3x3 block with the center removed.
const (
	NW = iota
	N
	NE
	W
	E
	SW
	S
	SE
)

// Neighborhood is the occupancy of a cell's 8 neighbors, indexed by NW..SE.
type Neighborhood [8]bool

// Frame is a cell coordinate inside a texture sheet.
type Frame struct {
	Col, Row int
}

// UnknownFrame is the "question mark" texture used when a corner key has no
// entry in the connection table.
var UnknownFrame = Frame{Col: 7, Row: 5}

// Corner symbols. Looking at one quarter of a tile:
// c is an outer corner, h a horizontal edge, v a vertical edge,
// i an inset corner and n plain fill.
const (
	cornerOuter      = 'c'
	cornerHorizontal = 'h'
	cornerVertical   = 'v'
	cornerInset      = 'i'
	cornerNone       = 'n'
)

// cornerTriples lists (horizontal, diagonal, vertical) neighbors for each
// corner, clockwise from top-left.
var cornerTriples = [4][3]int{
	{W, NW, N}, // top-left
	{E, NE, N}, // top-right
	{E, SE, S}, // bottom-right
	{W, SW, S}, // bottom-left
}

// connectionMap maps a 4-symbol corner key to its frame on a connected sheet.
var connectionMap = map[string]Frame{
	"chnv": {0, 0}, "hhnn": {1, 0}, "hcvn": {2, 0}, "nnin": {3, 0}, "nnni": {4, 0}, "chiv": {5, 0}, "hcvi": {6, 0}, "ccvv": {7, 0},
	"vnnv": {0, 1}, "nnnn": {1, 1}, "nvvn": {2, 1}, "ninn": {3, 1}, "innn": {4, 1}, "vihc": {5, 1}, "ivch": {6, 1}, "vvvv": {7, 1},
	"vnhc": {0, 2}, "nnhh": {1, 2}, "nvch": {2, 2}, "cccc": {3, 2}, "chhc": {4, 2}, "hhhh": {5, 2}, "hcch": {6, 2}, "vvcc": {7, 2},
	"hhni": {0, 3}, "ivvn": {1, 3}, "hhin": {2, 3}, "nvvi": {3, 3}, "hhii": {4, 3}, "ivvi": {5, 3}, "nnii": {6, 3}, "inni": {7, 3},
	"vniv": {0, 4}, "nihh": {1, 4}, "vinv": {2, 4}, "inhh": {3, 4}, "viiv": {4, 4}, "iihh": {5, 4}, "niin": {6, 4}, "iinn": {7, 4},
	"niii": {0, 5}, "inii": {1, 5}, "iiin": {2, 5}, "iini": {3, 5}, "inin": {4, 5}, "nini": {5, 5}, "iiii": {6, 5},
}

// keysByFrame is the inverse of connectionMap.
var keysByFrame = func() map[Frame]string {
	m := make(map[Frame]string, len(connectionMap))
	for k, f := range connectionMap {
		m[f] = k
	}
	return m
}()

// cornerSymbol classifies one corner from its horizontal, diagonal and
// vertical neighbors.
func cornerSymbol(h, d, v bool) byte {
	switch {
	case !h && !d && !v:
		return cornerOuter
	case h && !d && !v:
		return cornerHorizontal
	case !h && d && !v:
		return cornerOuter
	case !h && !d && v:
		return cornerVertical
	case h && d && !v:
		return cornerHorizontal
	case !h && d && v:
		return cornerVertical
	case h && !d && v:
		return cornerInset
	default:
		return cornerNone
	}
}

// ClassifyKey returns the 4-symbol corner key for a neighborhood, starting
// at the top-left corner and going clockwise.
func ClassifyKey(n Neighborhood) string {
	var key [4]byte
	for i, t := range cornerTriples {
		key[i] = cornerSymbol(n[t[0]], n[t[1]], n[t[2]])
	}
	return string(key[:])
}

// Classify maps a neighborhood to its connected-sheet frame.
func Classify(n Neighborhood) Frame {
	return FrameForKey(ClassifyKey(n))
}

// FrameForKey looks up a corner key. Keys without a table entry fall back
// to UnknownFrame.
func FrameForKey(key string) Frame {
	if f, ok := connectionMap[key]; ok {
		return f
	}
	return UnknownFrame
}

// KeyForFrame returns the corner key that produces f, if any.
func KeyForFrame(f Frame) (string, bool) {
	k, ok := keysByFrame[f]
	return k, ok
}
