package transcript

import "strings"

// Suffix is appended to every cache key.
const Suffix = ".txt"

var keyReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_")

// Key derives the cache file name for a video reference by replacing path and
// drive separators with underscores. References that differ only in separator
// style map to the same key.
func Key(videoRef string) string {
	return keyReplacer.Replace(videoRef) + Suffix
}
