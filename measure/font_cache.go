package measure

import "fmt"

var fontCache = newFontLRU(32)

// SetFontCacheCapacity changes the max number of cached font faces,
// mirroring the teacher's render.SetFontCacheCapacity.
func SetFontCacheCapacity(capacity int) {
	fontCache = newFontLRU(capacity)
}

func fontCacheKey(tt interface{}, sizePt, dpi float64) string {
	return fmt.Sprintf("%p_%.3f_%.1f", tt, sizePt, dpi)
}
