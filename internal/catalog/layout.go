package catalog

import (
	"fmt"

	"github.com/vovakirdan/tui-shapes/internal/core"
	"github.com/vovakirdan/tui-shapes/internal/render"
	"github.com/vovakirdan/tui-shapes/internal/shape"
)

// CaptionRows is the space reserved under every table for its caption.
const CaptionRows = 1

// Layout controls where shapes without an explicit origin are placed.
type Layout struct {
	OriginRow int // Row of the first band
	OriginCol int // Left column of every band
	Gap       int // Blank columns between tables
	MaxWidth  int // Wrap to a new band past this column; 0 disables wrapping
}

// Placement is a built shape and the screen origin of its table.
type Placement struct {
	Shape *shape.Shape
	Row   int
	Col   int
}

// Build constructs every shape in the set and assigns origins.
// Shapes are placed left to right; an explicit origin moves the cursor so
// later automatic shapes continue after it. On any definition error no
// placements are returned.
func Build(set Set, layout Layout) ([]Placement, error) {
	placements := make([]Placement, 0, len(set.Shapes))

	row, col := layout.OriginRow, layout.OriginCol
	bandH := 0

	for _, def := range set.Shapes {
		sh, err := shape.New(def.Name, def.Glyph, def.Rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: set %q shape %q: %w", set.ID, def.Name, err)
		}

		w, h := render.TableSize(len(def.Rows))

		if def.Origin != nil {
			row, col = def.Origin.Row, def.Origin.Col
		} else if layout.MaxWidth > 0 && col > layout.OriginCol && col+w > layout.MaxWidth {
			row += bandH + 1
			col = layout.OriginCol
			bandH = 0
		}

		placements = append(placements, Placement{Shape: sh, Row: row, Col: col})
		col += w + layout.Gap
		bandH = core.Max(bandH, h+CaptionRows)
	}

	return placements, nil
}
