package content

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/receptbanken/receptbanken/models"
)

// quantityPattern matches a simple a/b fraction, or an integer or decimal
// number with either separator. The fraction alternative must come first so
// "1/2" is not consumed as two integers.
var quantityPattern = regexp.MustCompile(`\d+\s*/\s*\d+|\d+(?:[.,]\d+)?`)

// unicode fraction glyphs for the common kitchen quantities, keyed by the
// value after rounding to two decimals.
var fractionGlyphs = map[float64]string{
	0.25: "¼",
	0.33: "⅓",
	0.5:  "½",
	0.66: "⅔",
	0.67: "⅔",
	0.75: "¾",
}

// ScaleIngredients returns a copy of sections with every numeric token in
// every ingredient line multiplied by newServings/originalServings. A line
// holding several quantities ("2 ägg, 400 g mjöl") has each scaled
// independently. The input is never mutated.
//
// originalServings must be positive; zero or negative counts return an
// error rather than silently rendering garbage quantities.
func ScaleIngredients(sections []models.IngredientSection, originalServings, newServings int) ([]models.IngredientSection, error) {
	if originalServings <= 0 {
		return nil, fmt.Errorf("original servings must be positive, got %d", originalServings)
	}
	if newServings <= 0 {
		return nil, fmt.Errorf("new servings must be positive, got %d", newServings)
	}
	factor := float64(newServings) / float64(originalServings)
	out := make([]models.IngredientSection, len(sections))
	for i, sec := range sections {
		items := make([]string, len(sec.Items))
		for j, line := range sec.Items {
			items[j] = scaleLine(line, factor)
		}
		out[i] = models.IngredientSection{Title: sec.Title, Items: items}
	}
	return out, nil
}

func scaleLine(line string, factor float64) string {
	return quantityPattern.ReplaceAllStringFunc(line, func(token string) string {
		v, ok := parseQuantity(token)
		if !ok {
			return token
		}
		return formatQuantity(v * factor)
	})
}

func parseQuantity(token string) (float64, bool) {
	if num, den, ok := strings.Cut(token, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatQuantity renders a scaled value the way the recipe pages show it:
// the common kitchen fractions as unicode glyphs, whole numbers bare, and
// everything else with one decimal and a comma separator.
func formatQuantity(v float64) string {
	rounded := math.Round(v*100) / 100
	if glyph, ok := fractionGlyphs[rounded]; ok {
		return glyph
	}
	if rounded == math.Trunc(rounded) {
		return strconv.Itoa(int(rounded))
	}
	oneDecimal := math.Round(rounded*10) / 10
	if oneDecimal == math.Trunc(oneDecimal) {
		// Rounding to one decimal landed on a whole number ("2,0" reads
		// worse than "2").
		return strconv.Itoa(int(oneDecimal))
	}
	return strings.Replace(strconv.FormatFloat(oneDecimal, 'f', 1, 64), ".", ",", 1)
}
