//go:build mage

// Package main contains Mage build targets for snippet-engine developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// projectDirs lists the working directories a book build expects.
var projectDirs = []string{
	"snippets/tex",
	"snippets/manifests",
}

// Init creates the output directory structure the scanner writes into.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Snippet directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "snippet-engine"
	cmdPkg  = "./cmd/snippet-engine"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// All builds the binary and runs the tests.
func All() {
	mg.Deps(Build, Test)
}

// Snippets runs the scanner over the current tree, emitting minted fragments
// and manifests into snippets/. Requires Init and Build.
func Snippets() error {
	mg.Deps(Init, Build)
	cmd := exec.Command(filepath.Join(binDir, binName), "scan",
		"--outdir", "snippets/tex", "--minted", "--json")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("snippet-engine scan: %w", err)
	}
	return nil
}
