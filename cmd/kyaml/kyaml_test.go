package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/kyaml"

	"github.com/scott-cotton/cli"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func testContext(out *bytes.Buffer) *cli.Context {
	return &cli.Context{
		In:  io.NopCloser(strings.NewReader("")),
		Out: nopWriteCloser{out},
		Err: nopWriteCloser{io.Discard},
		Go:  context.Background(),
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestDigestParsesTerminator(t *testing.T) {
	in := "b: 1\na: 2\n"
	file := writeTemp(t, "a.yaml", in)
	out := bytes.NewBuffer(nil)
	if err := MainCommand().Run(testContext(out), []string{"digest", "--", file}); err != nil {
		t.Fatal(err)
	}
	c, err := kyaml.DefaultTool().Digest([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := c.String() + "  " + file + "\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestSrcAddsSourceToErrors(t *testing.T) {
	file := writeTemp(t, "dup.yaml", "a: 1\na: 2\n")
	run := func(args ...string) string {
		err := MainCommand().Run(testContext(bytes.NewBuffer(nil)), args)
		if err == nil {
			t.Fatalf("%v: expected error", args)
		}
		return err.Error()
	}
	plain := run("format", file)
	withSrc := run("-src", "format", file)
	if !strings.Contains(withSrc, "a: 2") {
		t.Errorf("source line missing from %q", withSrc)
	}
	if len(withSrc) <= len(plain) {
		t.Errorf("-src did not add source: %q vs %q", withSrc, plain)
	}
}

func TestConfigTool(t *testing.T) {
	cfg := &MainConfig{Indent: 4, MaxDepth: 3, Dups: true, Src: true}
	tool, err := cfg.tool()
	if err != nil {
		t.Fatal(err)
	}
	if tool.Indent != 4 || tool.MaxDepth != 3 || !tool.AllowDuplicateKeys || !tool.SourceInErrors {
		t.Errorf("unexpected tool %+v", tool)
	}
	if _, err := (&MainConfig{Indent: 0}).tool(); err == nil {
		t.Error("expected error for zero indent")
	}
}
