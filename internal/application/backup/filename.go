package backup

import (
	"fmt"
	"time"
)

const fileDateLayout = "2006-01-02"

// FileName builds the download name for a single-collection export, e.g.
// "customers_2026-08-30.json".
func FileName(collection string, t time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", collection, t.Format(fileDateLayout), ext)
}

// FullBackupFileName builds the download name for a tagged full backup, e.g.
// "customers_full_2026-08-30.json".
func FullBackupFileName(collection string, t time.Time) string {
	return fmt.Sprintf("%s_full_%s.json", collection, t.Format(fileDateLayout))
}
