// pkg/ranges/ranges.go
package ranges

import (
	"fmt"
	"regexp"
	"strconv"
)

// Границы по умолчанию, совпадающие с историей чарта Hot 100.
const (
	MinYear     = 1900
	MaxYear     = 2100
	MinPosition = 1
	MaxPosition = 100
)

// Range – замкнутый интервал [Min, Max].
type Range struct {
	Min int
	Max int
}

// Contains сообщает, попадает ли v в интервал включительно.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

var (
	yearSpan   = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
	yearSingle = regexp.MustCompile(`^(\d{4})$`)
	yearFrom   = regexp.MustCompile(`^(\d{4})\+$`)
	yearUntil  = regexp.MustCompile(`^(\d{4})-$`)
	yearDecade = regexp.MustCompile(`^(\d{3})0s$`)
	posSpan    = regexp.MustCompile(`^(\d+)-(\d+)$`)
	posSingle  = regexp.MustCompile(`^(\d+)$`)
	posFrom    = regexp.MustCompile(`^(\d+)\+$`)
	posUntil   = regexp.MustCompile(`^(\d+)-$`)
)

// ParseYears разбирает диапазон лет: "2025", "2015-2019", "2010+", "2010-", "1960s".
func ParseYears(s string) (Range, error) {
	var r Range
	switch {
	case yearSpan.MatchString(s):
		m := yearSpan.FindStringSubmatch(s)
		r = Range{Min: atoi(m[1]), Max: atoi(m[2])}
	case yearSingle.MatchString(s):
		y := atoi(s)
		r = Range{Min: y, Max: y}
	case yearFrom.MatchString(s):
		r = Range{Min: atoi(yearFrom.FindStringSubmatch(s)[1]), Max: MaxYear}
	case yearUntil.MatchString(s):
		r = Range{Min: MinYear, Max: atoi(yearUntil.FindStringSubmatch(s)[1])}
	case yearDecade.MatchString(s):
		d := atoi(yearDecade.FindStringSubmatch(s)[1]) * 10
		r = Range{Min: d, Max: d + 9}
	default:
		return Range{}, fmt.Errorf("неверный диапазон лет %q", s)
	}
	return r, r.validate(s)
}

// ParsePositions разбирает диапазон позиций в чарте: "1-5", "100", "10+", "10-".
func ParsePositions(s string) (Range, error) {
	var r Range
	switch {
	case posSpan.MatchString(s):
		m := posSpan.FindStringSubmatch(s)
		r = Range{Min: atoi(m[1]), Max: atoi(m[2])}
	case posSingle.MatchString(s):
		p := atoi(s)
		r = Range{Min: p, Max: p}
	case posFrom.MatchString(s):
		r = Range{Min: atoi(posFrom.FindStringSubmatch(s)[1]), Max: MaxPosition}
	case posUntil.MatchString(s):
		r = Range{Min: MinPosition, Max: atoi(posUntil.FindStringSubmatch(s)[1])}
	default:
		return Range{}, fmt.Errorf("неверный диапазон позиций %q", s)
	}
	if r.Min < MinPosition {
		return Range{}, fmt.Errorf("позиция в %q должна быть не меньше %d", s, MinPosition)
	}
	return r, r.validate(s)
}

func (r Range) validate(src string) error {
	if r.Min > r.Max {
		return fmt.Errorf("в диапазоне %q начало больше конца", src)
	}
	return nil
}

// atoi вызывается только для строк, уже прошедших регулярное выражение.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
