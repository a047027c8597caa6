package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Memory is an in-memory grid implementing API. It backs unit tests and
// local development, and mirrors the remote store's habit of trimming
// trailing empty cells and rows from read results.
type Memory struct {
	mu     sync.Mutex
	titles []string
	grids  map[string][][]string
}

// NewMemory returns an empty Memory, optionally pre-provisioned with sheets.
func NewMemory(titles ...string) *Memory {
	m := &Memory{grids: map[string][][]string{}}
	for _, t := range titles {
		m.titles = append(m.titles, t)
		m.grids[t] = nil
	}
	return m
}

func (m *Memory) ReadRange(_ context.Context, rangeSpec string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, err := parseRange(rangeSpec)
	if err != nil {
		return nil, err
	}
	grid, ok := m.grids[r.sheet]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", r.sheet)
	}
	last := len(grid)
	if r.endRow > 0 && r.endRow < last {
		last = r.endRow
	}
	var out [][]string
	for i := r.startRow - 1; i < last; i++ {
		if i < 0 {
			continue
		}
		row := grid[i]
		var cells []string
		for j := r.startCol; j <= r.endCol && j < len(row); j++ {
			cells = append(cells, row[j])
		}
		// trim trailing empty cells, as the remote store does
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		out = append(out, cells)
	}
	// trim trailing empty rows
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (m *Memory) WriteRange(_ context.Context, rangeSpec string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, err := parseRange(rangeSpec)
	if err != nil {
		return err
	}
	grid, ok := m.grids[r.sheet]
	if !ok {
		return fmt.Errorf("unknown sheet %q", r.sheet)
	}
	for i, row := range rows {
		target := r.startRow - 1 + i
		for len(grid) <= target {
			grid = append(grid, nil)
		}
		for j, cell := range row {
			col := r.startCol + j
			if col > r.endCol {
				break
			}
			for len(grid[target]) <= col {
				grid[target] = append(grid[target], "")
			}
			grid[target][col] = cell
		}
	}
	m.grids[r.sheet] = grid
	return nil
}

func (m *Memory) AppendRow(_ context.Context, rangeSpec string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, err := parseRange(rangeSpec)
	if err != nil {
		return err
	}
	grid, ok := m.grids[r.sheet]
	if !ok {
		return fmt.Errorf("unknown sheet %q", r.sheet)
	}
	m.grids[r.sheet] = append(grid, append([]string(nil), row...))
	return nil
}

func (m *Memory) ListSheets(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.titles...), nil
}

func (m *Memory) CreateSheet(_ context.Context, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.grids[title]; ok {
		return fmt.Errorf("sheet %q already exists", title)
	}
	m.titles = append(m.titles, title)
	m.grids[title] = nil
	return nil
}

// gridRange is a parsed A1 range. Rows are 1-based, columns 0-based;
// endRow == 0 means unbounded.
type gridRange struct {
	sheet            string
	startRow, endRow int
	startCol, endCol int
}

func parseRange(spec string) (gridRange, error) {
	name, ref, ok := strings.Cut(spec, "!")
	if !ok {
		return gridRange{}, fmt.Errorf("range %q has no sheet name", spec)
	}
	name = strings.Trim(name, "'")

	start, end, hasEnd := strings.Cut(ref, ":")
	sc, sr, err := parseCell(start)
	if err != nil {
		return gridRange{}, fmt.Errorf("range %q: %w", spec, err)
	}
	if sr == 0 {
		sr = 1 // whole-column reference like A:J
	}
	r := gridRange{sheet: name, startRow: sr, endRow: sr, startCol: sc, endCol: sc}
	if hasEnd {
		ec, er, err := parseCell(end)
		if err != nil {
			return gridRange{}, fmt.Errorf("range %q: %w", spec, err)
		}
		r.endCol = ec
		r.endRow = er // 0 when the end reference is column-only
	}
	return r, nil
}

// parseCell splits "J5" into column index 9 and row 5. A column-only
// reference like "J" yields row 0.
func parseCell(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A') + 1
		i++
	}
	if col == 0 {
		return 0, 0, fmt.Errorf("bad cell reference %q", ref)
	}
	col--
	if i == len(ref) {
		return col, 0, nil
	}
	row, err = strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("bad cell reference %q", ref)
	}
	return col, row, nil
}
