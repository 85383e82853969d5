package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/law-makers/indexables/internal/domain"
	"github.com/law-makers/indexables/internal/reqctx"
)

func TestExitCode(t *testing.T) {
	ctx := reqctx.WithRun(context.Background(), "x")

	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("flag error"), ExitFailure},
		{domain.NewError(domain.ErrCodeParse, "bad input", nil), ExitParse},
		{reqctx.NewRunError(ctx, domain.NewError(domain.ErrCodeFetch, "down", nil)), ExitFetch},
		{fmt.Errorf("wrapped: %w", domain.NewError(domain.ErrCodeInternal, "no host", nil)), ExitInternal},
	}

	for _, c := range cases {
		if got := exitCode(c.err); got != c.want {
			t.Errorf("exitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestRun_ParseError(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"index", "blog.com/----/", "--no-progress", "--quiet"}, &stderr)
	if code != ExitParse {
		t.Errorf("Expected exit code %d, got %d", ExitParse, code)
	}
	if !strings.Contains(stderr.String(), "Error: ") || !strings.Contains(stderr.String(), "blog.com/----/") {
		t.Errorf("Expected the run error on stderr, got %q", stderr.String())
	}
}

func TestRun_ClosesAppOnFailure(t *testing.T) {
	code := run(context.Background(), []string{"index", "blog.com/----/", "--no-progress", "--quiet"}, io.Discard)
	if code == ExitOK {
		t.Fatal("Expected a failing run")
	}
	if a := GetAppFromCmd(indexCmd); a != nil {
		t.Error("Expected application to be closed and cleared after a failed run")
	}
}

func TestRun_MissingArgument(t *testing.T) {
	if code := run(context.Background(), []string{"index"}, io.Discard); code != ExitFailure {
		t.Errorf("Expected exit code %d, got %d", ExitFailure, code)
	}
}
