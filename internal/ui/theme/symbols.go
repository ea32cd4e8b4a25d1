package theme

import (
	"image/color"

	"github.com/abhisek/wellcheck/internal/questionnaire"
)

// Glyph is a rendered stand-in for a question or tier symbol.
type Glyph struct {
	Text  string
	Color color.Color
}

var glyphs = map[questionnaire.Symbol][]Glyph{
	questionnaire.SymbolEnergy: {
		{"▁", Error}, {"▄", Accent}, {"█", Success},
	},
	questionnaire.SymbolMood: {
		{"☺", Success}, {"☹", Accent},
	},
	questionnaire.SymbolLibido:      {{"♥", Error}},
	questionnaire.SymbolSleep:       {{"☀", Accent}, {"☾", Primary}},
	questionnaire.SymbolThermometer: {{"🌡", Accent}},
	questionnaire.SymbolSparkles:    {{"✦", Secondary}},
	questionnaire.SymbolSun:         {{"☀", Accent}},
	questionnaire.SymbolBrain:       {{"◉", Primary}},
	questionnaire.SymbolHeart:       {{"♥", Error}},
}

// Glyphs returns the glyphs drawn for a symbol, or nil for unknown symbols.
func Glyphs(s questionnaire.Symbol) []Glyph {
	return glyphs[s]
}
