// file: internals/helpers/time_format.go
package helper

import (
	"fmt"
	"time"
)

var clockLayouts = []string{"15:04", "15:04:05"}

// ParseClock menerima "HH:mm" atau "HH:mm:ss".
func ParseClock(s string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format (want HH:mm or HH:mm:ss): %q", s)
}

// FormatClock12h mengubah jam 24 jam ("13:05") menjadi tampilan 12 jam ("1:05 PM").
// Input yang tidak valid dilaporkan sebagai error, tidak dipaksa.
func FormatClock12h(s string) (string, error) {
	t, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return t.Format("3:04 PM"), nil
}
