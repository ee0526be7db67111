// pkg/chart/ingest.go
package chart

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/Clean1ines/hot100/pkg/logging"
	"github.com/Clean1ines/hot100/pkg/ranges"
)

// DateLayout – формат даты недели в фиде.
const DateLayout = "2006-01-02"

// DataError описывает битую запись фида. Index < 0 означает весь чарт.
type DataError struct {
	Date   string
	Index  int
	Reason string
}

func (e *DataError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("чарт %q: %s", e.Date, e.Reason)
	}
	return fmt.Sprintf("чарт %q, запись %d: %s", e.Date, e.Index, e.Reason)
}

// Stats – итоги нормализации фида.
type Stats struct {
	Snapshots      int
	OutOfRange     int
	SkippedCharts  int
	SkippedEntries int
	Errors         []error
}

// Ingestor проверяет записи фида и оставляет только недели из диапазона лет.
type Ingestor struct {
	Years  ranges.Range
	Logger *logging.Logger
}

// NewIngestor создает Ingestor для диапазона лет.
func NewIngestor(years ranges.Range, logger *logging.Logger) *Ingestor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Ingestor{Years: years, Logger: logger}
}

// Normalize превращает сырые чарты в проверенные недели, сохраняя порядок фида.
// Битые записи пропускаются по одной и попадают в Stats.
func (in *Ingestor) Normalize(raw []RawChart) ([]Snapshot, Stats) {
	var stats Stats
	snapshots := make([]Snapshot, 0, len(raw))
	for _, rc := range raw {
		date, err := time.Parse(DateLayout, rc.Date)
		if err != nil {
			in.reject(&stats, &DataError{Date: rc.Date, Index: -1, Reason: "неверная дата"})
			stats.SkippedCharts++
			continue
		}
		if !in.Years.Contains(date.Year()) {
			stats.OutOfRange++
			continue
		}
		snap := Snapshot{Date: date, Entries: make([]Entry, 0, len(rc.Data))}
		for i, re := range rc.Data {
			entry, err := parseEntry(rc.Date, i, re)
			if err != nil {
				in.reject(&stats, err)
				stats.SkippedEntries++
				continue
			}
			snap.Entries = append(snap.Entries, entry)
		}
		snapshots = append(snapshots, snap)
	}
	stats.Snapshots = len(snapshots)
	return snapshots, stats
}

func (in *Ingestor) reject(stats *Stats, err *DataError) {
	stats.Errors = append(stats.Errors, err)
	in.Logger.Warn().Str("date", err.Date).Int("index", err.Index).Msg(err.Reason)
}

func parseEntry(date string, index int, re RawEntry) (Entry, *DataError) {
	fail := func(reason string) (Entry, *DataError) {
		return Entry{}, &DataError{Date: date, Index: index, Reason: reason}
	}
	if re.Artist == nil || *re.Artist == "" {
		return fail("нет исполнителя")
	}
	if re.Song == nil || *re.Song == "" {
		return fail("нет названия")
	}
	rank, err := parseRank(re.ThisWeek)
	if err != nil {
		return fail(err.Error())
	}
	return Entry{Artist: *re.Artist, Title: *re.Song, Rank: rank}, nil
}

// parseRank принимает число или строку с числом; позиция должна быть не меньше 1.
func parseRank(raw []byte) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("нет позиции")
	}
	raw = bytes.Trim(raw, `"`)
	rank, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("неверная позиция %q", raw)
	}
	if rank < 1 {
		return 0, fmt.Errorf("позиция %d меньше 1", rank)
	}
	return rank, nil
}
