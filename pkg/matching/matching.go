// pkg/matching/matching.go
package matching

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match – результат сравнения лучшего кандидата с ключом.
type Match struct {
	Index    int
	Compared string
	Ratio    float64
	Distance int
}

// Best выбирает кандидата с наибольшим Ratio. При равенстве побеждает меньшее
// расстояние Левенштейна, затем кандидат, стоящий выше в выдаче поиска.
func Best(key string, candidates []TrackMetadata) (Match, bool) {
	key = strings.ToLower(key)
	best := Match{Index: -1}
	for i, c := range candidates {
		compared := c.Compared()
		m := Match{
			Index:    i,
			Compared: compared,
			Ratio:    Ratio(compared, key),
			Distance: levenshtein.ComputeDistance(compared, key),
		}
		if best.Index < 0 || m.Ratio > best.Ratio || (m.Ratio == best.Ratio && m.Distance < best.Distance) {
			best = m
		}
	}
	return best, best.Index >= 0
}
