// pkg/selection/selection.go
package selection

import (
	"sort"
	"strings"

	"github.com/Clean1ines/hot100/pkg/aggregate"
	"github.com/Clean1ines/hot100/pkg/chart"
	"github.com/Clean1ines/hot100/pkg/ranges"
)

// Options – параметры отбора песен.
type Options struct {
	Peak          ranges.Range
	Artists       []string // подстроки имени исполнителя, без учета регистра
	Top           int      // 0 – без ограничения
	Chronological bool
}

// Select отбирает и упорядочивает песни. Входной срез не изменяется.
func Select(records []*aggregate.Record, opts Options) []*aggregate.Record {
	out := FilterPeak(records, opts.Peak)
	SortByScore(out)
	out = FilterArtists(out, opts.Artists)
	out = Truncate(out, opts.Top)
	if opts.Chronological {
		Chronological(out)
	}
	return out
}

// FilterPeak оставляет песни, чей пик попадает в диапазон.
func FilterPeak(records []*aggregate.Record, peak ranges.Range) []*aggregate.Record {
	out := make([]*aggregate.Record, 0, len(records))
	for _, r := range records {
		if peak.Contains(r.Peak) {
			out = append(out, r)
		}
	}
	return out
}

// SortByScore сортирует по убыванию очков; при равенстве сохраняется порядок первого появления.
func SortByScore(records []*aggregate.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].Order() < records[j].Order()
	})
}

// FilterArtists оставляет песни, у которых часть ключа до " - " содержит хотя бы одну подстроку.
func FilterArtists(records []*aggregate.Record, artists []string) []*aggregate.Record {
	needles := make([]string, 0, len(artists))
	for _, a := range artists {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			needles = append(needles, a)
		}
	}
	if len(needles) == 0 {
		return records
	}
	out := make([]*aggregate.Record, 0, len(records))
	for _, r := range records {
		artist := strings.ToLower(chart.ArtistPart(r.Key))
		for _, n := range needles {
			if strings.Contains(artist, n) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Truncate оставляет первые top песен; top <= 0 означает все.
func Truncate(records []*aggregate.Record, top int) []*aggregate.Record {
	if top > 0 && top < len(records) {
		return records[:top]
	}
	return records
}

// Chronological переупорядочивает уже отобранные песни по дате пика.
func Chronological(records []*aggregate.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].PeakDate.Equal(records[j].PeakDate) {
			return records[i].PeakDate.Before(records[j].PeakDate)
		}
		return records[i].Order() < records[j].Order()
	})
}

// Keys возвращает ключи песен в текущем порядке.
func Keys(records []*aggregate.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Key
	}
	return out
}
