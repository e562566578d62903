// Package rewrite holds the text transforms applied to notes on their way to
// the site. Both transforms are pure functions over the note body.
package rewrite

import (
	"regexp"
	"strings"
)

// Note-embed syntax: ![[filename]].
var noteEmbed = regexp.MustCompile(`!\[\[([^\]]+)\]\]`)

const (
	lineBreak       = "\\\\\n"
	normalizedBreak = " \\\\\\\n"
)

// NormalizeEscapes turns a trailing `\\` line break into ` \\\` so the site
// renderer keeps the line break inside alignment blocks. Only runs of exactly
// two backslashes preceded by some other character are rewritten, and the
// preceding character is read from the input, so a line that is only `\\`
// after another rewritten line is handled in the same pass. The result is a
// fixed point.
func NormalizeEscapes(content string) string {
	var b strings.Builder
	last := 0
	for i := 1; i+len(lineBreak) <= len(content); i++ {
		if content[i-1] == '\\' || content[i:i+len(lineBreak)] != lineBreak {
			continue
		}
		if last == 0 {
			b.Grow(len(content) + 16)
		}
		b.WriteString(content[last:i])
		b.WriteString(normalizedBreak)
		last = i + len(lineBreak)
		i = last - 1
	}
	if last == 0 {
		return content
	}
	b.WriteString(content[last:])
	return b.String()
}

// RewriteImageLinks replaces every ![[name]] embed with a site-relative
// markdown image link `![](<urlPrefix>/<dirName>/<name>)` and returns the
// embedded filenames in order of first appearance.
func RewriteImageLinks(content, dirName, urlPrefix string) (string, []string) {
	base := strings.TrimRight(urlPrefix, "/") + "/" + dirName + "/"

	var images []string
	seen := make(map[string]struct{})
	rewritten := noteEmbed.ReplaceAllStringFunc(content, func(match string) string {
		name := noteEmbed.FindStringSubmatch(match)[1]
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			images = append(images, name)
		}
		return "![](" + base + name + ")"
	})
	return rewritten, images
}
