package publish

import "strings"

// Classification says how a target is published.
type Classification int

const (
	// Mirrored targets receive the normalized note verbatim.
	Mirrored Classification = iota
	// AssetBearing targets are site posts: image embeds are rewritten and
	// the images copied next to the site's static files.
	AssetBearing
)

func (c Classification) String() string {
	switch c {
	case AssetBearing:
		return "post"
	default:
		return "mirror"
	}
}

// Classify reports AssetBearing when target contains marker, the path
// fragment identifying site-published posts (for example "/blog/").
func Classify(target, marker string) Classification {
	if marker != "" && strings.Contains(target, marker) {
		return AssetBearing
	}
	return Mirrored
}
