package training

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultSets = 3
	defaultRest = 60
)

var (
	dayHeader = regexp.MustCompile(`(?i)##[ \t]*DIA[ \t]*(\d+)[ \t]*:[ \t]*([^\r\n]*)`)
	// restValue matches on folded text: a number, an optional range end, the
	// unit word glued to it and, after minutes, a seconds part ("1min30s").
	restValue = regexp.MustCompile(`(\d+)(?:\s+(?:a\s+)?\d+)?\s*([a-z]*)(?:\s*(\d+)\s*(?:segundos|segundo|seg|s)\b)?`)
)

// scanState is the position of the line scanner relative to an exercise table.
type scanState int

const (
	outsideTable scanState = iota
	insideTable
)

// Parse extracts training days from an oracle reply. Day numbers are kept as
// written; ok is false when no day yielded at least one exercise.
func Parse(text string) (days []DayPlan, ok bool) {
	headers := dayHeader.FindAllStringSubmatchIndex(text, -1)
	for i, h := range headers {
		num, err := strconv.Atoi(text[h[2]:h[3]])
		if err != nil {
			continue
		}

		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		exercises := scanTable(text[h[1]:end])
		if len(exercises) == 0 {
			continue
		}

		group := cleanCell(text[h[4]:h[5]])
		if group == "" {
			group = fmt.Sprintf("Dia %d", num)
		}

		days = append(days, DayPlan{Day: num, Group: group, Exercises: exercises})
	}
	return days, len(days) > 0
}

// scanTable walks a day block line by line. A header row opens a table, a
// non-empty line without pipes closes it.
func scanTable(block string) []Exercise {
	var (
		state     = outsideTable
		exercises []Exercise
	)

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)

		if isHeaderRow(line) {
			state = insideTable
			continue
		}

		switch state {
		case outsideTable:
			continue
		case insideTable:
			switch {
			case line == "":
			case !strings.Contains(line, "|"):
				state = outsideTable
			case isSeparatorRow(line):
			default:
				if ex, ok := parseRow(splitRow(line)); ok {
					exercises = append(exercises, ex)
				}
			}
		}
	}
	return exercises
}

func isHeaderRow(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	f := fold(line)
	return strings.Contains(f, "exercicio") && strings.Contains(f, "series")
}

func isSeparatorRow(line string) bool {
	if !strings.Contains(line, "-") {
		return false
	}
	return strings.Trim(line, "|-: \t") == ""
}

// splitRow returns the cells of a pipe row with the border pipes removed.
func splitRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = cleanCell(cells[i])
	}
	return cells
}

// parseRow maps cells positionally: name, sets, reps, rest.
func parseRow(cells []string) (Exercise, bool) {
	if len(cells) < 3 || cells[0] == "" || fold(cells[0]) == "exercicio" {
		return Exercise{}, false
	}

	sets, ok := leadingInt(cells[1])
	if !ok || sets <= 0 {
		sets = defaultSets
	}

	rest := defaultRest
	if len(cells) >= 4 {
		rest = parseRest(cells[3])
	}

	return Exercise{
		Name: cells[0],
		Sets: sets,
		Reps: cells[2],
		Rest: rest,
	}, true
}

// parseRest reads the first number of a rest cell as seconds. Only a minute
// unit right after that number converts it: "2 min" is 120, "60s (mínimo)" is 60.
func parseRest(cell string) int {
	m := restValue.FindStringSubmatch(fold(cell))
	if m == nil {
		return defaultRest
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultRest
	}
	if !minuteUnits[m[2]] {
		return n
	}
	n *= 60
	if m[3] != "" {
		secs, _ := strconv.Atoi(m[3])
		n += secs
	}
	return n
}

var minuteUnits = map[string]bool{
	"m": true, "min": true, "mins": true, "minuto": true, "minutos": true,
}

func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_")
	return strings.TrimSpace(s)
}
