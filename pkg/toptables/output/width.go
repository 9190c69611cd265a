package output

import (
	"unicode/utf8"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// MaxColumnWidth is the widest column excelize accepts.
const MaxColumnWidth = 255

// ColumnWidths returns one width per column: the rune length of the longest
// rendered cell or of the header, whichever is larger.
func ColumnWidths(t *models.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = utf8.RuneCountInString(col)
	}

	for _, row := range t.Rows {
		for i, v := range row {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(models.Text(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for i, w := range widths {
		if w > MaxColumnWidth {
			widths[i] = MaxColumnWidth
		}
	}
	return widths
}
