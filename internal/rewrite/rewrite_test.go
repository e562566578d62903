package rewrite

import (
	"slices"
	"testing"
)

func TestNormalizeEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"double backslash at eol", "a = b \\\\\nc", "a = b  \\\\\\\nc"},
		{"no space before", "x\\\\\n", "x \\\\\\\n"},
		{"several lines", "a\\\\\nb\\\\\nc", "a \\\\\\\nb \\\\\\\nc"},
		{"not followed by newline", "a\\\\ b", "a\\\\ b"},
		{"at end of input", "a\\\\", "a\\\\"},
		{"single backslash", "a\\\n", "a\\\n"},
		{"triple backslash untouched", "a \\\\\\\n", "a \\\\\\\n"},
		{"four backslashes untouched", "a\\\\\\\\\n", "a\\\\\\\\\n"},
		{"line starting with backslashes", "\\\\\n", "\\\\\n"},
		{"crlf untouched", "a\\\\\r\n", "a\\\\\r\n"},
		{"backslash-only line after break", "a\\\\\n\\\\\n", "a \\\\\\\n \\\\\\\n"},
		{"backslash-only lines in a row", "a\\\\\n\\\\\n\\\\\nb", "a \\\\\\\n \\\\\\\n \\\\\\\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEscapes(tt.in); got != tt.want {
				t.Fatalf("NormalizeEscapes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeEscapesIsIdempotent(t *testing.T) {
	inputs := []string{
		"\\begin{aligned}\nx &= 1 \\\\\ny &= 2 \\\\\n\\end{aligned}\n",
		"plain text\n",
		"a\\\\\\\\\nb \\\\\\\n",
		"a\\\\\n\\\\\n",
		"x &= 1 \\\\\n\\\\\n\\\\\ny\\\\\n",
	}
	for _, in := range inputs {
		once := NormalizeEscapes(in)
		twice := NormalizeEscapes(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestRewriteImageLinks(t *testing.T) {
	got, images := RewriteImageLinks("see ![[cat.png]] here", "2024-01-01-post", "/photos")
	if want := "see ![](/photos/2024-01-01-post/cat.png) here"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !slices.Equal(images, []string{"cat.png"}) {
		t.Fatalf("unexpected images %v", images)
	}
}

func TestRewriteImageLinksOrderAndDuplicates(t *testing.T) {
	in := "![[b.png]] and ![[a image.jpg]]\n![[b.png]] ![[]] ![[c.gif]]"
	got, images := RewriteImageLinks(in, "2023-05-01-trip", "/photos/")
	want := "![](/photos/2023-05-01-trip/b.png) and ![](/photos/2023-05-01-trip/a image.jpg)\n" +
		"![](/photos/2023-05-01-trip/b.png) ![[]] ![](/photos/2023-05-01-trip/c.gif)"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
	if !slices.Equal(images, []string{"b.png", "a image.jpg", "c.gif"}) {
		t.Fatalf("unexpected images %v", images)
	}
}

func TestRewriteImageLinksLeavesOtherSyntax(t *testing.T) {
	in := "[[wikilink]] ![alt](x.png) ![[unterminated"
	got, images := RewriteImageLinks(in, "d", "/photos")
	if got != in {
		t.Fatalf("expected content unchanged, got %q", got)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %v", images)
	}
}

func TestRewriteIsDeterministic(t *testing.T) {
	in := "![[x.png]] text ![[y.png]] ![[x.png]]"
	first, firstImages := RewriteImageLinks(in, "dir", "/photos")
	for range 5 {
		again, againImages := RewriteImageLinks(in, "dir", "/photos")
		if again != first || !slices.Equal(againImages, firstImages) {
			t.Fatalf("non-deterministic output: %q %v vs %q %v", again, againImages, first, firstImages)
		}
	}
}
