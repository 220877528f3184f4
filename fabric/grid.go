package fabric

import (
	"fmt"
	"strconv"
)

// Grid generates a synthetic rows×cols switch-matrix fabric: one junction
// wire per tile, with configurable connections in both directions between
// orthogonal neighbors. The result is left unfrozen so callers can attach
// site and bel pins before calling Freeze.
//
// Wire IDs follow GridWireID(prefix, row, col); the default prefix is "J".
// Returns ErrBadDimensions when rows < 1 or cols < 1.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...GridOption) (*Fabric, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}

	cfg := defaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := NewFabric()

	// 1) Place one junction wire per tile.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// AddWire cannot fail here: IDs are non-empty and unique.
			_, _ = f.AddWire(GridWireID(cfg.prefix, r, c), Tile{Row: r, Col: c})
		}
	}

	// 2) Link orthogonal neighbors in both directions. Linking east and
	//    south from every tile covers each adjacent pair exactly once.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := GridWireID(cfg.prefix, r, c)
			if c+1 < cols {
				east := GridWireID(cfg.prefix, r, c+1)
				_, _ = f.Connect(id, east, WithConfigurable())
				_, _ = f.Connect(east, id, WithConfigurable())
			}
			if r+1 < rows {
				south := GridWireID(cfg.prefix, r+1, c)
				_, _ = f.Connect(id, south, WithConfigurable())
				_, _ = f.Connect(south, id, WithConfigurable())
			}
		}
	}

	return f, nil
}

// GridWireID returns the ID of the junction wire generated by Grid for the
// given tile: "<prefix><row>_<col>".
func GridWireID(prefix string, row, col int) string {
	return prefix + strconv.Itoa(row) + "_" + strconv.Itoa(col)
}
