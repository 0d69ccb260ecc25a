package wordgrid

import "sort"

// SpareLetters returns the sorted multiset of every Movable letter's
// value in the grid — the spare-letter pool the word solver draws
// from.
func (g *Grid) SpareLetters() []rune {
	var spares []rune
	for _, letter := range g.Letters() {
		if letter.State == Movable {
			spares = append(spares, letter.Value)
		}
	}
	sort.Slice(spares, func(i, j int) bool { return spares[i] < spares[j] })
	return spares
}
