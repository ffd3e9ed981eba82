package lattice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coords2Algebraic names cell (x,y): letters for the row band counted from
// the bottom (height-1-y, spreadsheet style), digits for column x+1.
func (l *Lattice) Coords2Algebraic(x, y int) (string, error) {
	if !l.InBounds(x, y) {
		return "", fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, l.Width, l.Height)
	}
	return rowLetters(l.Height-1-y) + strconv.Itoa(x+1), nil
}

// Algebraic2Coords is the inverse of Coords2Algebraic.
func (l *Lattice) Algebraic2Coords(label string) (x, y int, err error) {
	split := strings.IndexFunc(label, isDigit)
	if split < 0 {
		return 0, 0, fmt.Errorf("%w: %q has no column number", ErrLabel, label)
	}
	if split == 0 {
		return 0, 0, fmt.Errorf("%w: %q has no row letters", ErrLabel, label)
	}
	row, err := parseRowLetters(label[:split])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrLabel, label, err)
	}
	digits := label[split:]
	if strings.IndexFunc(digits, func(r rune) bool { return !isDigit(r) }) >= 0 {
		return 0, 0, fmt.Errorf("%w: %q has trailing characters", ErrLabel, label)
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, 0, fmt.Errorf("%w: %q has a zero-padded column", ErrLabel, label)
	}
	col, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrLabel, label, err)
	}
	x, y = col-1, l.Height-1-row
	if !l.InBounds(x, y) {
		return 0, 0, fmt.Errorf("%w: %q in %dx%d", ErrOutOfBounds, label, l.Width, l.Height)
	}
	return x, y, nil
}

// rowLetters encodes a zero-based row index: 0→a, 25→z, 26→aa, 27→ab.
func rowLetters(n int) string {
	var buf []byte
	for n++; n > 0; n /= 26 {
		n--
		buf = append(buf, byte('a'+n%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// parseRowLetters decodes rowLetters; digit value = position+1.
func parseRowLetters(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return 0, fmt.Errorf("invalid row letter %q", r)
		}
		if n > (math.MaxInt-26)/26 {
			return 0, fmt.Errorf("row %q overflows", s)
		}
		n = n*26 + int(r-'a') + 1
	}
	return n - 1, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
