package shape

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceOrbit is an independent enumeration used to check Orientations.
// It works on '#'/'.' strings, rotates via transpose + row reversal, and
// dedups with a map, so it shares no code with the engine.
func referenceOrbit(g Grid) []string {
	lines := strings.Split(g.String(), "\n")
	n := len(lines)

	rotate := func(in []string) []string {
		out := make([]string, n)
		for y := 0; y < n; y++ {
			var sb strings.Builder
			for x := 0; x < n; x++ {
				// transpose then mirror each row: out[y][x] = in[n-1-x][y]
				sb.WriteByte(in[n-1-x][y])
			}
			out[y] = sb.String()
		}
		return out
	}
	mirror := func(in []string) []string {
		out := make([]string, n)
		for y, line := range in {
			b := []byte(line)
			for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
				b[i], b[j] = b[j], b[i]
			}
			out[y] = string(b)
		}
		return out
	}

	var order []string
	seen := make(map[string]bool)
	add := func(img []string) {
		key := strings.Join(img, "\n")
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}

	cur := lines
	add(cur)
	for i := 0; i < 3; i++ {
		cur = rotate(cur)
		add(cur)
	}
	cur = mirror(lines)
	add(cur)
	for i := 0; i < 3; i++ {
		cur = rotate(cur)
		add(cur)
	}
	return order
}

func orbitStrings(orbit []Grid) []string {
	out := make([]string, len(orbit))
	for i, g := range orbit {
		out[i] = g.String()
	}
	return out
}

func TestOrientationsVerticalLine(t *testing.T) {
	base := MustDecode(0x04, 0x04, 0x04, 0x04, 0x04)

	orbit := Orientations(base)
	require.Len(t, orbit, 2)
	assert.True(t, orbit[0].Equal(base))
	assert.True(t, orbit[1].Equal(MustDecode(0x00, 0x00, 0x1F, 0x00, 0x00)), "second orientation should be the horizontal line")
}

func TestOrientationsCenteredBlock(t *testing.T) {
	base := MustDecode(0x00, 0x06, 0x06, 0x00)

	orbit := Orientations(base)
	require.Len(t, orbit, 1)
	assert.True(t, orbit[0].Equal(base))
}

func TestOrientationsMatchReference(t *testing.T) {
	base := MustDecode(0x04, 0x06, 0x06, 0x00)

	orbit := Orientations(base)
	assert.Equal(t, referenceOrbit(base), orbitStrings(orbit))
	// The P-shaped pentomino has no symmetry, so every image is distinct.
	require.Len(t, orbit, 8)
	assert.True(t, orbit[1].Equal(RotateCW(base)))
	assert.True(t, orbit[4].Equal(Reflect(base)))
}

func TestOrientationsOffCenterCell(t *testing.T) {
	// A lone corner cell visits the four corners; mirroring adds nothing new.
	base := MustDecode(0x4, 0x0, 0x0)

	orbit := Orientations(base)
	assert.Equal(t, []string{
		"#..\n...\n...",
		"..#\n...\n...",
		"...\n...\n..#",
		"...\n...\n#..",
	}, orbitStrings(orbit))
}

func TestOrientationsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		base := randomGrid(rng, 1+rng.Intn(6))
		orbit := Orientations(base)

		require.Equal(t, referenceOrbit(base), orbitStrings(orbit), "base:\n%s", base)
		require.Contains(t, []int{1, 2, 4, 8}, len(orbit))
		require.True(t, orbit[0].Equal(base), "orbit must start with the base grid")

		for a := range orbit {
			for b := a + 1; b < len(orbit); b++ {
				require.Falsef(t, orbit[a].Equal(orbit[b]), "duplicate orientations %d and %d", a, b)
			}
		}

		// The orbit is closed under both generators.
		for _, g := range orbit {
			require.True(t, containsGrid(orbit, RotateCW(g)))
			require.True(t, containsGrid(orbit, Reflect(g)))
		}
	}
}

func containsGrid(list []Grid, g Grid) bool {
	for _, o := range list {
		if o.Equal(g) {
			return true
		}
	}
	return false
}
