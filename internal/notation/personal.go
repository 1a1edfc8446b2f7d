package notation

import "github.com/SeamusWaldron/rcube"

// Describe converts a move to a plain-language description, for people
// who think of turns by direction rather than by letter.
// Reference frame: facing the front face.
//
// Mapping:
//
//	R  -> "R up"                -R -> "R down"
//	L  -> "L down"              -L -> "L up"
//	M  -> "middle down"         -M -> "middle up"
//	U  -> "top rotate left"     -U -> "top rotate right"
//	E  -> "equator rotate right" -E -> "equator rotate left"
//	D  -> "bottom rotate right" -D -> "bottom rotate left"
//	F  -> "front rotate clockwise"  -F -> "front rotate anti-clockwise"
//	B  -> "back rotate clockwise"   -B -> "back rotate anti-clockwise"
//	S  -> "standing rotate clockwise" -S -> "standing rotate anti-clockwise"
func Describe(m rcube.Move) string {
	switch m {
	case rcube.R:
		return "R up"
	case rcube.RPrime:
		return "R down"
	case rcube.L:
		return "L down"
	case rcube.LPrime:
		return "L up"
	case rcube.M:
		return "middle down"
	case rcube.MPrime:
		return "middle up"
	case rcube.U:
		return "top rotate left"
	case rcube.UPrime:
		return "top rotate right"
	case rcube.E:
		return "equator rotate right"
	case rcube.EPrime:
		return "equator rotate left"
	case rcube.D:
		return "bottom rotate right"
	case rcube.DPrime:
		return "bottom rotate left"
	case rcube.F:
		return "front rotate clockwise"
	case rcube.FPrime:
		return "front rotate anti-clockwise"
	case rcube.B:
		return "back rotate clockwise"
	case rcube.BPrime:
		return "back rotate anti-clockwise"
	case rcube.S:
		return "standing rotate clockwise"
	case rcube.SPrime:
		return "standing rotate anti-clockwise"
	}
	return m.String()
}

// DescribeSequence describes every move in a sequence.
func DescribeSequence(moves []rcube.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = Describe(m)
	}
	return out
}
