package notedate

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Layout is the format of dates derived from file timestamps.
const Layout = "2006-01-02"

const datePrefix = "date: "

// Resolve returns the original date of the note at path with the given
// content. Dates taken from the content are not validated.
func Resolve(path, content string) (string, error) {
	if date, ok := FromContent(content); ok {
		return date, nil
	}
	created, err := CreatedAt(path)
	if err != nil {
		return "", err
	}
	return created.In(time.Local).Format(Layout), nil
}

// FromContent returns the remainder of the first line starting with "date: ".
func FromContent(content string) (string, bool) {
	for line := range strings.Lines(content) {
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if date, ok := strings.CutPrefix(line, datePrefix); ok {
			return date, true
		}
	}
	return "", false
}

// CreatedAt returns the creation time of path. When the filesystem does not
// record one, the modification time stands in.
func CreatedAt(path string) (time.Time, error) {
	if created, ok, err := birthTime(path); err != nil {
		return time.Time{}, fmt.Errorf("read creation time of %s: %w", path, err)
	} else if ok {
		return created, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("read creation time of %s: %w", path, err)
	}
	return info.ModTime(), nil
}
