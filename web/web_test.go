package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsEmbedded(t *testing.T) {
	for _, name := range []string{"static/index.html", "static/app.js", "static/styles.css"} {
		if _, err := fs.Stat(Assets, name); err != nil {
			t.Fatalf("missing embedded asset %s: %v", name, err)
		}
	}
}

// Titles, authors and usernames are free-form account input; the SPA must
// run them through its escape helper before interpolating into innerHTML.
// Post content is the single sanitized-HTML sink and stays raw.
func TestMarkupEscapesAccountInput(t *testing.T) {
	data, err := fs.ReadFile(Assets, "static/app.js")
	if err != nil {
		t.Fatalf("read app.js: %v", err)
	}
	src := string(data)

	if !strings.Contains(src, "const esc =") {
		t.Fatalf("escape helper missing from app.js")
	}

	for _, raw := range []string{
		"${p.title}", "${p.author}", "${p.permissions}",
		"${post.title}", "${post.author}",
		"${user.username}",
		"${post ? post.title",
		"${post ? post.content",
	} {
		if strings.Contains(src, raw) {
			t.Fatalf("user-authored field interpolated unescaped: %s", raw)
		}
	}

	if !strings.Contains(src, `<div class="content">${post.content}</div>`) {
		t.Fatalf("sanitized post content should render as HTML")
	}
}
