//go:build !linux

package notedate

import "time"

func birthTime(string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}
