package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseFileName derives the emphasis area label from a workbook file name.
//
// Everything from the first "." is cut, underscores become spaces, every
// literal "sg" is removed and the words are title-cased. The removal is a
// plain substring replace, so "companion_animal_sg.xlsx" yields
// "Companion Animal " with the trailing space left in place.
func ParseFileName(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "sg", "")
	return cases.Title(language.Und).String(name)
}
