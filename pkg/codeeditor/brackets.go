package codeeditor

// delimiterPair is one entry of the auto-pair and match table.
type delimiterPair struct {
	open  rune
	close rune
}

// delimiterPairs is checked in order; the first entry that matches the
// character at or before the cursor wins and the remaining pairs are
// not considered.
var delimiterPairs = []delimiterPair{
	{'(', ')'},
	{'{', '}'},
	{'<', '>'},
	{'[', ']'},
	{'"', '"'},
}

// matchDelimiter looks at the character at or immediately before pos and,
// when it is one of the known delimiters, scans the document for its
// counterpart keeping a nesting balance. It returns the positions of the
// delimiter that anchored the scan and of its match. ok is false when no
// delimiter is found at the cursor or the scan runs off the document with
// the balance unresolved.
func matchDelimiter(doc *Document, pos int) (origin, match int, ok bool) {
	current := doc.CharacterAt(pos)
	previous := doc.CharacterAt(pos - 1)

	for _, pair := range delimiterPairs {
		var direction int
		var active, counter rune
		p := pos

		switch {
		case pair.open == current:
			direction = 1
			active = current
			counter = pair.close
		case pair.close == previous:
			direction = -1
			active = previous
			counter = pair.open
			p--
		case pair.open == previous:
			direction = 1
			active = previous
			counter = pair.close
			p--
		case pair.close == current:
			direction = -1
			active = current
			counter = pair.open
		default:
			continue
		}

		origin = p
		balance := 1

		for balance != 0 {
			p += direction
			if p < 0 || p >= doc.CharacterCount() {
				break
			}

			ch := doc.CharacterAt(p)
			if ch == active {
				balance++
			} else if ch == counter {
				balance--
			}
		}

		if balance == 0 {
			return origin, p, true
		}

		// Only the first pair the cursor character belongs to is
		// considered; an unresolved scan produces no highlight.
		return 0, 0, false
	}

	return 0, 0, false
}
