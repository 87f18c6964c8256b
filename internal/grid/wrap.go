package grid

import "mtoohey.com/texui/internal/util"

// wrapLines wraps every line to width, either by cutting it into chunks or,
// when words is set, between words. Empty lines are kept.
func wrapLines(lines []string, width int, words bool) []string {
	wrap := chunkLine
	if words {
		wrap = wrapWords
	}

	var out []string
	for _, line := range lines {
		wrapped := wrap([]rune(line), width)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		out = append(out, wrapped...)
	}

	return out
}

// chunkLine cuts line into pieces of width runes. The last piece may be
// shorter.
func chunkLine(line []rune, width int) []string {
	var out []string
	for len(line) > width {
		out = append(out, string(line[:width]))
		line = line[width:]
	}
	if len(line) > 0 {
		out = append(out, string(line))
	}

	return out
}

// splitRuns splits line into alternating runs of spaces and non-spaces. A
// hyphen inside a word also ends its run so that the word may wrap after it.
func splitRuns(line []rune) [][]rune {
	var runs [][]rune
	start := 0
	for i := 1; i <= len(line); i++ {
		if i == len(line) || (line[i] == ' ') != (line[start] == ' ') || line[i-1] == '-' && i-1 > start {
			runs = append(runs, line[start:i])
			start = i
		}
	}

	return runs
}

func isSpace(run []rune) bool {
	return len(run) > 0 && run[0] == ' '
}

// wrapWords greedily packs the words of line into lines of at most width
// runes. Spaces at a wrap point are dropped, but leading spaces of the first
// line are kept. A word longer than width is split, filling the remainder of
// the current line first. A full line is ended before the word instead.
func wrapWords(line []rune, width int) []string {
	runs := splitRuns(line)

	var out []string
	for len(runs) > 0 {
		if len(out) > 0 && isSpace(runs[0]) {
			runs = runs[1:]
			continue
		}

		var cur []rune
		for len(runs) > 0 && len(cur)+len(runs[0]) <= width {
			cur = append(cur, runs[0]...)
			runs = runs[1:]
		}

		if len(runs) > 0 && len(runs[0]) > width {
			space := width - len(cur)
			if len(cur) == 0 {
				space = util.Max(space, 1)
			}
			if space > 0 {
				cur = append(cur, runs[0][:space]...)
				runs[0] = runs[0][space:]
			}
		}

		cur = trimTrailingSpaces(cur)
		if len(cur) > 0 {
			out = append(out, string(cur))
		}
	}

	return out
}

func trimTrailingSpaces(cur []rune) []rune {
	end := len(cur)
	for end > 0 && cur[end-1] == ' ' {
		end--
	}

	return cur[:end]
}
