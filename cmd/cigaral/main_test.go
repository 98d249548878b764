package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/alnmat/seq"
)

func TestRun(t *testing.T) {
	ref, err := WrtTemp(">r\nAAAGGGCCC\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(ref)
	var b strings.Builder
	if code := run([]string{"-o", "1", "-w", "1", "-x", ref, ref}, &b); code != ExitSuccess {
		t.Fatal("exit code", code)
	}
	if !strings.HasPrefix(b.String(), "r r 9= 45\n") {
		t.Fatal("output\n", b.String())
	}
	if code := run([]string{ref}, &b); code != ExitUsageError {
		t.Fatal("one file gave exit code", code)
	}
	if code := run([]string{"-o", "x", ref, ref}, &b); code != ExitUsageError {
		t.Fatal("bad penalty gave exit code", code)
	}
}

// The profile has to be written even when the alignment fails.
func TestProfileOnFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.fa")
	var b strings.Builder
	if code := run([]string{"-cpuprofile", dir, missing, missing}, &b); code != ExitFailure {
		t.Fatal("missing input gave exit code", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Fatal("no cpu profile after a failure:", err)
	}
}
