package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	s, err := New("line", '1', []uint64{0x04, 0x04, 0x04, 0x04, 0x04})
	require.NoError(t, err)

	assert.Equal(t, "line", s.Name())
	assert.Equal(t, '1', s.Glyph())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, "line (1) 1/2", s.String())
}

func TestNewShapeInvalidDefinition(t *testing.T) {
	s, err := New("bad", 'x', []uint64{0x00, 0x16, 0x06, 0x00})
	require.Error(t, err)
	assert.Nil(t, s, "no shape may be returned for a bad definition")
	assert.True(t, errors.Is(err, ErrDefinition))
}

func TestAdvanceCycles(t *testing.T) {
	tests := []struct {
		name string
		rows []uint64
		want int
	}{
		{"block", []uint64{0x00, 0x06, 0x06, 0x00}, 1},
		{"line", []uint64{0x04, 0x04, 0x04, 0x04, 0x04}, 2},
		{"corner cell", []uint64{0x4, 0x0, 0x0}, 4},
		{"p pentomino", []uint64{0x04, 0x06, 0x06, 0x00}, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.name, '#', tc.rows)
			require.NoError(t, err)
			require.Equal(t, tc.want, s.Len())

			orbit := s.Orientations()
			for k := 0; k < 2*s.Len(); k++ {
				require.Equal(t, k%s.Len(), s.Index())
				require.True(t, s.Current().Equal(orbit[k%s.Len()]), "step %d", k)
				s.Advance()
			}
			assert.Equal(t, 0, s.Index(), "advancing Len() times returns to the start")
		})
	}
}

func TestOrientationsReturnsCopy(t *testing.T) {
	s, err := New("p", 'p', []uint64{0x04, 0x06, 0x06, 0x00})
	require.NoError(t, err)

	orbit := s.Orientations()
	orbit[0] = MustDecode(0x0, 0x0, 0x0, 0x0)

	assert.Equal(t, ".#..\n.##.\n.##.\n....", s.Current().String())
}

func TestFromGrid(t *testing.T) {
	base := MustDecode(0x2, 0x0)
	s := FromGrid("dot", '.', base)

	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Current().Equal(base))
}
