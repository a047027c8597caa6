package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_WriteAndReadRange(t *testing.T) {
	m := NewMemory("Orders")
	ctx := context.Background()

	require.NoError(t, m.WriteRange(ctx, "Orders!A1:J1", [][]string{{"order_id", "order_number"}}))
	require.NoError(t, m.AppendRow(ctx, "Orders!A:J", []string{"o1", "1001", "", "555"}))
	require.NoError(t, m.AppendRow(ctx, "Orders!A:J", []string{"o2", "1002"}))

	rows, err := m.ReadRange(ctx, "Orders!A2:J")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// trailing empty cells are trimmed, interior ones kept
	assert.Equal(t, []string{"o1", "1001", "", "555"}, rows[0])
	assert.Equal(t, []string{"o2", "1002"}, rows[1])

	// column-only range
	ids, err := m.ReadRange(ctx, "Orders!A2:A")
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "o1", ids[0][0])
	assert.Equal(t, "o2", ids[1][0])
}

func TestMemory_SingleCellWrite(t *testing.T) {
	m := NewMemory("Orders")
	ctx := context.Background()
	require.NoError(t, m.AppendRow(ctx, "Orders!A:J", []string{"header"}))
	require.NoError(t, m.AppendRow(ctx, "Orders!A:J", []string{"o1", "1001"}))

	require.NoError(t, m.WriteRange(ctx, "Orders!H2", [][]string{{"hello"}}))

	rows, err := m.ReadRange(ctx, "Orders!A2:J2")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 8)
	assert.Equal(t, "o1", rows[0][0])
	assert.Equal(t, "hello", rows[0][7])
}

func TestMemory_RowOverwrite(t *testing.T) {
	m := NewMemory("Orders")
	ctx := context.Background()
	require.NoError(t, m.AppendRow(ctx, "Orders!A:J", []string{"h"}))
	require.NoError(t, m.AppendRow(ctx, "Orders!A:J", []string{"o1", "1001", "x"}))

	require.NoError(t, m.WriteRange(ctx, "Orders!A2:J2", [][]string{{"o1", "1001", "y"}}))
	rows, err := m.ReadRange(ctx, "Orders!A2:J2")
	require.NoError(t, err)
	assert.Equal(t, "y", rows[0][2])
}

func TestMemory_Sheets(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	titles, err := m.ListSheets(ctx)
	require.NoError(t, err)
	assert.Empty(t, titles)

	require.NoError(t, m.CreateSheet(ctx, "Orders"))
	assert.Error(t, m.CreateSheet(ctx, "Orders"))

	titles, err = m.ListSheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Orders"}, titles)

	_, err = m.ReadRange(ctx, "Nope!A1:B2")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("Orders!A2:J5")
	require.NoError(t, err)
	assert.Equal(t, gridRange{sheet: "Orders", startRow: 2, endRow: 5, startCol: 0, endCol: 9}, r)

	r, err = parseRange("'My Orders'!H3")
	require.NoError(t, err)
	assert.Equal(t, gridRange{sheet: "My Orders", startRow: 3, endRow: 3, startCol: 7, endCol: 7}, r)

	r, err = parseRange("Orders!A:J")
	require.NoError(t, err)
	assert.Equal(t, 1, r.startRow)
	assert.Equal(t, 0, r.endRow)
	assert.Equal(t, 9, r.endCol)

	_, err = parseRange("A1:B2")
	assert.Error(t, err, "sheet name is required")

	_, err = parseRange("Orders!1:2")
	assert.Error(t, err)
}
