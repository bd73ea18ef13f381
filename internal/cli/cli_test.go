package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperr "github.com/matzehuels/rimealogy/pkg/errors"
	"github.com/matzehuels/rimealogy/pkg/pipeline"
)

const colonySave = "../../pkg/save/testdata/colony.xml"

// execute runs the root command with args and returns the log output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return logs.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	want := map[string]bool{"tree": false, "render": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q", name)
		}
	}
}

func TestTreeDefaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")
	logs, err := execute(t, "tree", colonySave, out)
	if err != nil {
		t.Fatalf("tree error: %v", err)
	}

	dot := readFile(t, out)
	if !strings.Contains(dot, "\tHuman10 [label=\"Adam 'Ace' Reed\",fillcolor=\"#DDDDFF\"];") {
		t.Errorf("output missing colonist node:\n%s", dot)
	}
	if strings.Contains(dot, "Human30") {
		t.Error("colony mode should not draw unrelated persons")
	}
	for _, msg := range []string{"Parsing file", "Retrieving game data", "Writing to file", "Genealogy complete"} {
		if !strings.Contains(logs, msg) {
			t.Errorf("logs missing %q", msg)
		}
	}
}

func TestTreePositionalModes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")
	if _, err := execute(t, "tree", colonySave, out, "all", "all", "--draw", "colony"); err != nil {
		t.Fatalf("tree error: %v", err)
	}
	dot := readFile(t, out)
	if !strings.Contains(dot, "\tHuman30 [label=\"'Ohu'\",fillcolor=\"#DDFFDD\"];") {
		t.Errorf("positional modes should override flags:\n%s", dot)
	}
}

func TestTreeConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "rimealogy.toml")
	if err := os.WriteFile(cfg, []byte("draw = \"all\"\nnamed = \"all\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "tree.dot")

	if _, err := execute(t, "tree", colonySave, out, "--config", cfg, "--named", "seen"); err != nil {
		t.Fatalf("tree error: %v", err)
	}
	dot := readFile(t, out)
	if !strings.Contains(dot, "\tHuman30 [label=\"???\",fillcolor=\"#EEEEEE\"];") {
		t.Errorf("config draw mode with flag named mode expected:\n%s", dot)
	}
}

func TestTreeAllFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")
	if _, err := execute(t, "tree", colonySave, out, "--all"); err != nil {
		t.Fatalf("tree error: %v", err)
	}
	if _, err := execute(t, "tree", colonySave, out, "--all", "--draw", "colony"); err == nil {
		t.Error("--all and --draw together should fail")
	}
}

func TestTreeErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code apperr.Code
	}{
		{"missing save argument", []string{"tree"}, apperr.ErrCodeInvalidInput},
		{"too many arguments", []string{"tree", colonySave, "a", "b", "c", "d"}, apperr.ErrCodeInvalidInput},
		{"invalid draw mode", []string{"tree", colonySave, filepath.Join(dir, "a.dot"), "family"}, apperr.ErrCodeInvalidMode},
		{"invalid named mode", []string{"tree", colonySave, filepath.Join(dir, "b.dot"), "colony", "some"}, apperr.ErrCodeInvalidMode},
		{"invalid format", []string{"tree", colonySave, filepath.Join(dir, "c.dot"), "-f", "gif"}, apperr.ErrCodeInvalidFormat},
		{"missing save", []string{"tree", filepath.Join(dir, "missing.rws"), filepath.Join(dir, "d.dot")}, apperr.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if apperr.GetCode(err) != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", apperr.GetCode(err), tt.code, err)
			}
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed runs should not write files, found %d", len(entries))
	}
}

func TestRenderDOT(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "tree.dot")
	if _, err := execute(t, "tree", colonySave, dotPath); err != nil {
		t.Fatalf("tree error: %v", err)
	}

	if _, err := execute(t, "render", dotPath); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if svg := readFile(t, filepath.Join(dir, "tree.svg")); !strings.Contains(svg, "<svg") {
		t.Error("render output is not SVG")
	}
}

func TestRenderJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "tree.json")
	if _, err := execute(t, "tree", colonySave, jsonPath, "--format", "json"); err != nil {
		t.Fatalf("tree error: %v", err)
	}

	out := filepath.Join(dir, "family.svg")
	if _, err := execute(t, "render", jsonPath, "-o", out); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if svg := readFile(t, out); !strings.Contains(svg, "<svg") {
		t.Error("render output is not SVG")
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "tree.dot")
	if err := os.WriteFile(dotPath, []byte("digraph G {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "render", dotPath, "-f", "pdf")
	if !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
		t.Errorf("render -f pdf error = %v, want %v", err, apperr.ErrCodeInvalidFormat)
	}
}

func TestCompletion(t *testing.T) {
	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"completion", "bash"})
	root.SetOut(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out.String(), "rimealogy") {
		t.Error("bash completion should mention the command name")
	}
}

func TestSVGCommand(t *testing.T) {
	if got, want := svgCommand("tree.dot"), "dot -Tsvg tree.dot > tree.svg"; got != want {
		t.Errorf("svgCommand() = %q, want %q", got, want)
	}
}

func TestStatsLine(t *testing.T) {
	line := statsLine(pipeline.Stats{Persons: 5, Drawn: 3, Named: 3, Relations: 1})
	for _, want := range []string{"of 5 persons drawn", "3 named", "1 relationships"} {
		if !strings.Contains(line, want) {
			t.Errorf("statsLine() = %q, missing %q", line, want)
		}
	}
	if strings.Contains(line, "couples") {
		t.Error("statsLine() should omit zero couples")
	}
}

func TestUsageArgs(t *testing.T) {
	_, err := execute(t, "render")
	if !apperr.IsUsage(err) {
		t.Fatalf("render without input error = %v, want usage error", err)
	}
	if msg := apperr.UserMessage(err); !strings.Contains(msg, "rimealogy render <tree.dot|tree.json>") {
		t.Errorf("UserMessage() = %q, should include the usage line", msg)
	}
}
