package optfile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tschijnmo/ccpoviz/internal/options"
)

var (
	yamlBegRe = regexp.MustCompile(`^ *--- *$`)
	yamlEndRe = regexp.MustCompile(`^ *\.\.\. *$`)
	jsonBegRe = regexp.MustCompile(`^ *\{`)
	jsonEndRe = regexp.MustCompile(`\} *$`)
)

// FromTitle extracts an option layer embedded in the title lines of the
// input file. A YAML document delimited by "---" and "..." sentinel
// lines takes precedence; failing that, the outermost pair of curly
// braces is parsed as JSON. A title with neither is an error, since the
// caller explicitly asked for title-embedded options.
func FromTitle(title []string) (options.Map, error) {
	if lines := linesBetween(title, yamlBegRe, yamlEndRe); len(lines) > 0 {
		return ParseYAML([]byte(strings.Join(lines, "\n")))
	}
	if lines := linesBetween(title, jsonBegRe, jsonEndRe); len(lines) > 0 {
		return ParseJSON([]byte(strings.Join(lines, "\n")))
	}
	return nil, fmt.Errorf("the title of the input file cannot be parsed as an option document")
}

// linesBetween returns the slice of lines starting at the first line
// matching beg and ending at the last line matching end, or nil when no
// such span exists.
func linesBetween(lines []string, beg, end *regexp.Regexp) []string {
	begPos := -1
	for i, line := range lines {
		if beg.MatchString(line) {
			begPos = i
			break
		}
	}
	if begPos < 0 {
		return nil
	}

	for i := len(lines) - 1; i >= begPos; i-- {
		if end.MatchString(lines[i]) {
			return lines[begPos : i+1]
		}
	}
	return nil
}
