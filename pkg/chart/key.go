// pkg/chart/key.go
package chart

import "strings"

// Separator разделяет исполнителя и название в ключе песни.
const Separator = " - "

// Key строит нормализованный ключ "{artist} - {title}".
// Ключ хранится в кэше разрешений как есть, поэтому его формат менять нельзя.
func Key(artist, title string) string {
	a := strings.ToLower(artist)
	a = strings.ReplaceAll(a, "featuring", "")
	a = strings.ReplaceAll(a, " with ", " ")
	a = strings.ReplaceAll(a, " and ", " ")
	return a + Separator + strings.ToLower(title)
}

// ArtistPart возвращает часть ключа до первого разделителя.
func ArtistPart(key string) string {
	if i := strings.Index(key, Separator); i >= 0 {
		return key[:i]
	}
	return key
}
