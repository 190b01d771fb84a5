package syntax

// maxHeaderLevel is the deepest ATX header level.
const maxHeaderLevel = 6

// matchPrefix returns the first prefix row matching at the start of line and
// the byte length of the matched marker.
func (t *Table) matchPrefix(line string) (Pattern, int, bool) {
	if line == "" {
		return Pattern{}, 0, false
	}

	// A line starting with '#' is a header or nothing.
	if line[0] == '#' {
		pattern, ok := t.lookupPrefix(KindHeader)
		if !ok {
			return Pattern{}, 0, false
		}
		if n := prefixLen(KindHeader, line); n > 0 {
			return pattern, n, true
		}
		return Pattern{}, 0, false
	}

	for _, pattern := range t.prefixes {
		if n := prefixLen(pattern.Kind, line); n > 0 {
			return pattern, n, true
		}
	}
	return Pattern{}, 0, false
}

func (t *Table) lookupPrefix(kind Kind) (Pattern, bool) {
	for _, pattern := range t.prefixes {
		if pattern.Kind == kind {
			return pattern, true
		}
	}
	return Pattern{}, false
}

// prefixLen returns the length of the prefix marker of the given kind at the
// start of line, or 0 if there is none.
func prefixLen(kind Kind, line string) int {
	switch kind {
	case KindHeader:
		return headerLen(line)
	case KindQuote:
		return quoteLen(line)
	case KindOrderedList:
		return orderedLen(line)
	case KindUnorderedList:
		return unorderedLen(line)
	default:
		return 0
	}
}

// headerLen matches "#{1,6} ".
func headerLen(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeaderLevel || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level + 1
}

// quoteLen matches one or more '>' each optionally followed by one space,
// so both ">> text" and "> > text" are a single nested quote prefix.
func quoteLen(line string) int {
	pos := 0
	for pos < len(line) && line[pos] == '>' {
		pos++
		if pos < len(line) && line[pos] == ' ' {
			pos++
		}
	}
	return pos
}

// orderedLen matches "\d+\. ".
func orderedLen(line string) int {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits+1 >= len(line) {
		return 0
	}
	if line[digits] != '.' || line[digits+1] != ' ' {
		return 0
	}
	return digits + 2
}

// unorderedLen matches "[-*+] ".
func unorderedLen(line string) int {
	if len(line) < 2 || line[1] != ' ' {
		return 0
	}
	switch line[0] {
	case '-', '*', '+':
		return 2
	default:
		return 0
	}
}
