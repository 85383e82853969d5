package urlutil

import (
	"errors"
	"testing"
)

func TestParseOrigin(t *testing.T) {
	valid := map[string]string{
		"https://blog.com/blog/async-tests-tokio-rust/": "blog.com",
		"http://example.com":                            "example.com",
		"https://Example.COM:8443/a?b=c#d":              "example.com",
		"ftp://files.example.org/pub":                   "files.example.org",
		"https://[::1]:8080/":                           "[::1]",
		"https:blog.com":                                "blog.com",
		"https:/blog.com/post":                          "blog.com",
		"http:///blog.com":                              "blog.com",
		"HTTPS://Blog.com":                              "blog.com",
	}
	for in, want := range valid {
		got, err := ParseOrigin(in)
		if err != nil {
			t.Fatalf("ParseOrigin(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseOrigin(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseOrigin_Invalid(t *testing.T) {
	cases := map[string]error{
		"blog.com/----/":          ErrRelativeURL,
		"/just/a/path":            ErrRelativeURL,
		"mailto:someone@blog.com": ErrMissingHost,
		"localhost:8080":          ErrMissingHost,
		"http:///":                ErrEmptyHost,
		"https:":                  ErrEmptyHost,
		"file:///tmp/x":           ErrMissingHost,
	}
	for in, want := range cases {
		_, err := ParseOrigin(in)
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
		if !errors.Is(err, want) {
			t.Errorf("ParseOrigin(%q) error = %v, want %v", in, err, want)
		}
	}

	if _, err := ParseOrigin("http://[::1"); err == nil {
		t.Fatal("expected error for malformed IPv6 host")
	}
}

func TestEnsureScheme(t *testing.T) {
	want := "https://blog.com"

	if got := EnsureScheme("https://blog.com"); got != want {
		t.Errorf("EnsureScheme with scheme = %q, want %q", got, want)
	}
	if got := EnsureScheme("blog.com"); got != want {
		t.Errorf("EnsureScheme without scheme = %q, want %q", got, want)
	}

	for _, in := range []string{"blog.com", "https://blog.com", "", "http://blog.com"} {
		once := EnsureScheme(in)
		if twice := EnsureScheme(once); twice != once {
			t.Errorf("EnsureScheme not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
