// pkg/chart/types.go
package chart

import (
	"time"

	"github.com/goccy/go-json"
)

// RawChart – недельный чарт в том виде, в каком он приходит из фида.
type RawChart struct {
	Date string     `json:"date"`
	Data []RawEntry `json:"data"`
}

// RawEntry – строка чарта из фида. Поля не типизированы заранее,
// чтобы битая запись отбрасывалась по одной, а не ломала разбор всего фида.
type RawEntry struct {
	Song     *string         `json:"song"`
	Artist   *string         `json:"artist"`
	ThisWeek json.RawMessage `json:"this_week"`
}

// Snapshot – проверенный недельный чарт.
type Snapshot struct {
	Date    time.Time
	Entries []Entry
}

// Entry – позиция песни в конкретной неделе.
type Entry struct {
	Artist string
	Title  string
	Rank   int
}
