package arraydecl

import (
	"strconv"
	"strings"
)

const (
	unitSpace = "space"
	unitTab   = "tab"
)

// indentUnits renders a column count the way alignment messages expect it:
// in tabs when a tab width is configured, in spaces otherwise.
func (sn *Sniff) indentUnits(cols int) string {
	if sn.indentUnit == unitTab {
		return formatAmount(float64(cols) / float64(sn.tabWidth))
	}
	return strconv.Itoa(cols)
}

func (sn *Sniff) indentUnitName(cols int) string {
	if sn.indentUnit == unitTab {
		return pluralize(unitTab, float64(cols)/float64(sn.tabWidth))
	}
	return pluralize(unitSpace, float64(cols))
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func pluralize(word string, n float64) string {
	if n != 1 {
		return word + "s"
	}
	return word
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
