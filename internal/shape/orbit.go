package shape

// MaxOrientations is the order of the dihedral group acting on a square.
const MaxOrientations = 8

// Orientations enumerates the distinct images of base under rotation and
// reflection, in the order the viewer cycles through them:
//
//	base, R(base), R²(base), R³(base), F(base), R(F(base)), R²(F(base)), R³(F(base))
//
// where R is RotateCW and F is Reflect. Images equal to an earlier entry are
// skipped. The result always starts with base, so it is never empty.
func Orientations(base Grid) []Grid {
	result := make([]Grid, 0, MaxOrientations)
	result = append(result, base)

	result = appendRotations(result, base)

	mirrored := Reflect(base)
	result = appendUnique(result, mirrored)
	result = appendRotations(result, mirrored)

	return result
}

// appendRotations rotates start clockwise three times, chaining each rotation
// off the previous image, and appends the new images.
func appendRotations(list []Grid, start Grid) []Grid {
	g := start
	for i := 0; i < 3; i++ {
		g = RotateCW(g)
		list = appendUnique(list, g)
	}
	return list
}

// appendUnique appends g unless an equal grid is already in list.
func appendUnique(list []Grid, g Grid) []Grid {
	for _, existing := range list {
		if existing.Equal(g) {
			return list
		}
	}
	return append(list, g)
}
