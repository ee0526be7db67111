// pkg/matching/matcher.go
package matching

import (
	"regexp"
	"strings"

	"github.com/xrash/smetrics"
)

// TrackMetadata содержит данные кандидата, участвующие в сравнении.
type TrackMetadata struct {
	Title   string
	Artists []string
}

var (
	featPattern     = regexp.MustCompile(`\(feat.+\)`)
	remasterPattern = regexp.MustCompile(`remaster.+`)
)

// CleanTitle приводит название к нижнему регистру и убирает "(feat. ...)" и хвост "remaster...".
func CleanTitle(title string) string {
	name := strings.ToLower(title)
	name = featPattern.ReplaceAllString(name, "")
	name = remasterPattern.ReplaceAllString(name, "")
	return strings.TrimRight(name, " -")
}

// Compared возвращает строку "{artists} - {title}", которая сравнивается с ключом песни.
func (t TrackMetadata) Compared() string {
	return strings.ToLower(strings.Join(t.Artists, ", ") + " - " + CleanTitle(t.Title))
}

// Ratio возвращает сходство строк по шкале 0–100: 100 * (la + lb - d) / (la + lb),
// где d – расстояние вставок и удалений (замена стоит как удаление плюс вставка).
func Ratio(s1, s2 string) float64 {
	total := len(s1) + len(s2)
	if total == 0 {
		return 100
	}
	distance := smetrics.WagnerFischer(s1, s2, 1, 1, 2)
	return 100 * float64(total-distance) / float64(total)
}
