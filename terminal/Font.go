package terminal

// 3x5 block digits used for the score.
var digitGlyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
}

const glyphWidth = 3
const glyphSpacing = 1

// GetCellsFromChar returns the filled {x, y} offsets of a glyph. Unknown characters are blank.
func GetCellsFromChar(ch rune) [][2]int {
	glyph, ok := digitGlyphs[ch]
	if !ok {
		return nil
	}

	var cells [][2]int
	for y, row := range glyph {
		for x, c := range row {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// layoutText places word horizontally centred on x with its top row at y.
func layoutText(x, y int, word string) [][2]int {
	letters := []rune(word)
	if len(letters) == 0 {
		return nil
	}

	totalLen := len(letters)*glyphWidth + (len(letters)-1)*glyphSpacing
	startX := x - totalLen/2

	var cells [][2]int
	for i, letter := range letters {
		offsetX := startX + i*(glyphWidth+glyphSpacing)
		for _, cell := range GetCellsFromChar(letter) {
			cells = append(cells, [2]int{offsetX + cell[0], y + cell[1]})
		}
	}
	return cells
}
