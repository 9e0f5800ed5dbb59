//go:build e2e

// Package e2e_test runs the reqs binary against the packages described in testdata/*.txtar.
package e2e_test

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var update = flag.Bool("update", false, "rewrite cmp files in the scripts from actual output")

// binDir holds the reqs binary built once for all scripts.
var binDir string

func TestMain(m *testing.M) {
	os.Exit(runWithBinary(m))
}

func runWithBinary(m *testing.M) int {
	dir, err := os.MkdirTemp("", "reqs-e2e-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = os.RemoveAll(dir) }()

	//nolint:gosec // Building binary with static arguments, not user input
	build := exec.Command("go", "build", "-o", filepath.Join(dir, "reqs"), "./cmd/reqs")
	build.Dir = ".."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "building reqs:", err)
		return 1
	}

	binDir = dir
	return m.Run()
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:           "testdata",
		UpdateScripts: *update,
		Setup: func(env *testscript.Env) error {
			// Plain, uncolored output regardless of the host terminal.
			env.Setenv("NO_COLOR", "1")
			env.Setenv("CI", "true")
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
			return nil
		},
	})
}
