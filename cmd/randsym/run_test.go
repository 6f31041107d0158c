package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

var identifierExpr = regexp.MustCompile(`_randsym_[0-9a-f]{32}`)

func writeSource(t *testing.T, dir, name, content string) string {
	location := filepath.Join(dir, name)
	if err := os.WriteFile(location, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %v: %v", location, err)
	}
	return location
}

func TestRun(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	valid := writeSource(t, dir, "valid.rs", "fn /?@f/() {}\n/?@f/();\n")
	malformed := writeSource(t, dir, "malformed.rs", "fn /?x() {}\n")

	testCases := []struct {
		description string
		args        []string
		exitCode    int
		identifiers int
		contains    string
	}{
		{description: "help", args: []string{"randsym", "-h"}, exitCode: exitOK, contains: "usage: randsym"},
		{description: "missing source", args: []string{"randsym"}, exitCode: exitUsage},
		{description: "unknown flag", args: []string{"randsym", "-x", valid}, exitCode: exitUsage},
		{description: "expand to stdout", args: []string{"randsym", valid}, exitCode: exitOK, identifiers: 2},
		{description: "lenient malformed", args: []string{"randsym", malformed}, exitCode: exitOK, contains: "fn ?x() {}"},
		{description: "strict malformed", args: []string{"randsym", "-s", malformed}, exitCode: exitError},
		{description: "diff", args: []string{"randsym", "-d", valid}, exitCode: exitOK, identifiers: 2, contains: "-fn /?@f/() {}"},
		{description: "missing file", args: []string{"randsym", filepath.Join(dir, "none.rs")}, exitCode: exitError},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			exitCode := run(tc.args, stdout, stderr)
			assert.Equal(t, tc.exitCode, exitCode, stderr.String())
			if tc.identifiers > 0 {
				identifiers := identifierExpr.FindAllString(stdout.String(), -1)
				if assert.Len(t, identifiers, tc.identifiers) {
					assert.Equal(t, identifiers[0], identifiers[1])
				}
			}
			if tc.contains != "" {
				assert.Contains(t, stdout.String(), tc.contains)
			}
		})
	}
}

func TestRun_OutputFolder(t *testing.T) {
	color.NoColor = true
	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, "a.go", "var /?/ = 1\n")
	writeSource(t, src, "b.txt", "/?/\n")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	exitCode := run([]string{"randsym", "-o", out, "-e", ".go", src}, stdout, stderr)
	assert.Equal(t, exitOK, exitCode, stderr.String())

	data, err := os.ReadFile(filepath.Join(out, "a.go"))
	assert.Nil(t, err)
	assert.Regexp(t, `^var _randsym_[0-9a-f]{32} = 1\n$`, string(data))
	_, err = os.Stat(filepath.Join(out, "b.txt"))
	assert.True(t, os.IsNotExist(err))
}
