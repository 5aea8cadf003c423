package mines

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	lettersInAlphabet = 26
	firstLetter       = 'A'

	MaxRow = 255 // "IV"
	MaxCol = 256
)

type Point struct {
	Row, Col int
}

// Point implements [fmt.Stringer]
func (p Point) String() string {
	return RowLabel(p.Row) + strconv.Itoa(p.Col+1)
}

// RowLabel converts a 0-indexed row into letters: A..Z, then AA, AB and so on.
func RowLabel(row int) string {
	var label string
	if row >= lettersInAlphabet {
		label = RowLabel(row/lettersInAlphabet - 1)
	}
	return label + string(rune(firstLetter+row%lettersInAlphabet))
}

// ParseRow is the inverse of [RowLabel]. Letters are case-insensitive.
func ParseRow(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty row", ErrInvalidCoordinate)
	}
	n := 0
	for _, c := range strings.ToUpper(s) {
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: row %q", ErrInvalidCoordinate, s)
		}
		n = n*lettersInAlphabet + int(c-firstLetter) + 1
		if n-1 > MaxRow {
			return 0, fmt.Errorf("%w: row %q is past %s", ErrInvalidCoordinate, s, RowLabel(MaxRow))
		}
	}
	return n - 1, nil
}

// ParseCol converts a 1-indexed column number into a 0-indexed column.
func ParseCol(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q", ErrInvalidCoordinate, s)
	}
	if n < 1 || n > MaxCol {
		return 0, fmt.Errorf("%w: column %d is out of 1..%d", ErrInvalidCoordinate, n, MaxCol)
	}
	return n - 1, nil
}

var coordinatePattern = regexp.MustCompile(`^[0-9]+[a-zA-Z]+$|^[a-zA-Z]+[0-9]+$`)

// ParsePoint reads a token such as "A1", "c14" or "5g". Letters name the row
// and digits the column, in either order.
func ParsePoint(token string) (Point, error) {
	if !coordinatePattern.MatchString(token) {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, token)
	}
	split := strings.IndexFunc(token, isDigit)
	letters, digits := token[:split], token[split:]
	if split == 0 {
		split = strings.IndexFunc(token, isLetter)
		digits, letters = token[:split], token[split:]
	}
	row, err := ParseRow(letters)
	if err != nil {
		return Point{}, err
	}
	col, err := ParseCol(digits)
	if err != nil {
		return Point{}, err
	}
	return Point{Row: row, Col: col}, nil
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
