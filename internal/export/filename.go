package export

import (
	"fmt"
	"time"
)

// Filename builds the timestamped artifact name for a download, e.g.
// "cv-1756450000000.pdf".
func Filename(kind, ext string) string {
	return filenameAt(kind, ext, time.Now())
}

func filenameAt(kind, ext string, t time.Time) string {
	return fmt.Sprintf("%s-%d.%s", kind, t.UnixMilli(), ext)
}
