package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCellsFromChar(t *testing.T) {
	assert.Len(t, GetCellsFromChar('1'), 8)
	assert.Len(t, GetCellsFromChar('8'), 13)
	assert.Contains(t, GetCellsFromChar('7'), [2]int{2, 4})
	assert.NotContains(t, GetCellsFromChar('0'), [2]int{1, 2})
	assert.Nil(t, GetCellsFromChar('x'))

	for ch := '0'; ch <= '9'; ch++ {
		for _, cell := range GetCellsFromChar(ch) {
			assert.True(t, cell[0] >= 0 && cell[0] < glyphWidth, "%c %v", ch, cell)
			assert.True(t, cell[1] >= 0 && cell[1] < 5, "%c %v", ch, cell)
		}
	}
}

func TestLayoutText(t *testing.T) {
	assert.Nil(t, layoutText(10, 1, ""))

	cells := layoutText(10, 1, "12")
	assert.Len(t, cells, len(GetCellsFromChar('1'))+len(GetCellsFromChar('2')))
	// '1' starts at column 7, '2' at column 11
	assert.Contains(t, cells, [2]int{8, 1})
	assert.Contains(t, cells, [2]int{11, 1})
	assert.Contains(t, cells, [2]int{13, 5})
	assert.NotContains(t, cells, [2]int{10, 1})
}
