// pkg/aggregate/aggregate.go
package aggregate

import (
	"math"
	"time"

	"github.com/Clean1ines/hot100/pkg/chart"
)

// Exponent задает степень затухания веса позиции: rank^-Exponent.
// При значении больше 1 долгое пребывание в середине чарта не перевешивает короткий первый номер.
const Exponent = 1.5

// Record – накопленная статистика одной песни.
type Record struct {
	Key      string
	Artist   string
	Title    string
	Score    float64
	Peak     int
	PeakDate time.Time

	order int
}

// Order возвращает порядковый номер первого появления песни в потоке чартов.
func (r *Record) Order() int {
	return r.order
}

// Display возвращает строку "{artist} - {title}" в исходном написании.
func (r *Record) Display() string {
	return r.Artist + chart.Separator + r.Title
}

// Weight – вклад одного появления на позиции rank.
func Weight(rank int) float64 {
	return math.Pow(float64(rank), -Exponent)
}

// Aggregator сворачивает недельные чарты в одну запись на ключ.
type Aggregator struct {
	records map[string]*Record
	ordered []*Record
}

// New создает пустой Aggregator.
func New() *Aggregator {
	return &Aggregator{records: make(map[string]*Record)}
}

// Add учитывает одну неделю.
func (a *Aggregator) Add(s chart.Snapshot) {
	for _, e := range s.Entries {
		key := chart.Key(e.Artist, e.Title)
		rec, ok := a.records[key]
		if !ok {
			rec = &Record{
				Key:      key,
				Artist:   e.Artist,
				Title:    e.Title,
				Peak:     e.Rank,
				PeakDate: s.Date,
				order:    len(a.ordered),
			}
			a.records[key] = rec
			a.ordered = append(a.ordered, rec)
		} else if e.Rank < rec.Peak {
			rec.Peak = e.Rank
			rec.PeakDate = s.Date
		}
		rec.Score += Weight(e.Rank)
	}
}

// AddAll учитывает недели по порядку.
func (a *Aggregator) AddAll(snapshots []chart.Snapshot) {
	for _, s := range snapshots {
		a.Add(s)
	}
}

// Get возвращает запись по ключу.
func (a *Aggregator) Get(key string) (*Record, bool) {
	rec, ok := a.records[key]
	return rec, ok
}

// Records возвращает записи в порядке первого появления. Срез принадлежит вызывающему.
func (a *Aggregator) Records() []*Record {
	out := make([]*Record, len(a.ordered))
	copy(out, a.ordered)
	return out
}

// Len возвращает число уникальных песен.
func (a *Aggregator) Len() int {
	return len(a.ordered)
}
