package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/xplshn/fixlua/pkg/config"
	"github.com/xplshn/fixlua/pkg/dump"
	"github.com/xplshn/fixlua/pkg/intern"
	"github.com/xplshn/fixlua/pkg/lexer"
	"github.com/xplshn/fixlua/pkg/token"
	"github.com/xplshn/fixlua/pkg/util"
)

// Golden is the recorded scan of one source file.
type Golden struct {
	Hash     string        `json:"hash"`
	Std      string        `json:"std"`
	Tokens   []dump.Record `json:"tokens"`
	Error    string        `json:"error,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
}

type FileTestResult struct {
	File    string `json:"file"`
	Status  string `json:"status"` // PASS, FAIL, SKIP, ERROR
	Message string `json:"message,omitempty"`
	Diff    string `json:"diff,omitempty"`
}

type TestSuiteResults map[string]*FileTestResult

func goldenPath(sourceFile, dir string) string {
	name := "." + filepath.Base(sourceFile) + ".json"
	if dir != "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(filepath.Dir(sourceFile), name)
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum64()), nil
}

// scan lexes a file in-process and records everything a golden file holds.
// A scanning error is part of the record, not a failure of scan itself.
func scan(path, std string) (*Golden, error) {
	hash, err := hashFile(path)
	if err != nil {
		return nil, err
	}
	cfg := config.NewConfig()
	if err := cfg.ApplyStd(std); err != nil {
		return nil, err
	}
	src, err := util.OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	g := &Golden{Hash: hash, Std: std, Tokens: []dump.Record{}}
	strs := intern.NewStore()
	strs.PinAll(token.Words()...)
	// golden files must not depend on where the tree is checked out
	l := lexer.New(cfg, src, "="+filepath.Base(path), strs)
	for {
		tok, err := l.Next()
		if err != nil {
			g.Error = err.Error()
			break
		}
		g.Tokens = append(g.Tokens, dump.FromToken(tok))
		if tok.Kind == token.EOS {
			break
		}
	}
	for _, w := range l.Warnings() {
		g.Warnings = append(g.Warnings, w.String())
	}
	return g, nil
}

func readGolden(path string) (*Golden, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g Golden
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("could not parse golden file %s: %w", path, err)
	}
	return &g, nil
}

func writeGolden(path string, g *Golden) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// testFile compares a fresh scan of file against its golden record.
func testFile(file, dir string) *FileTestResult {
	gp := goldenPath(file, dir)
	want, err := readGolden(gp)
	if os.IsNotExist(err) {
		return &FileTestResult{File: file, Status: "SKIP", Message: "No golden file; run with --generate-golden"}
	}
	if err != nil {
		return &FileTestResult{File: file, Status: "ERROR", Message: err.Error()}
	}

	got, err := scan(file, want.Std)
	if err != nil {
		return &FileTestResult{File: file, Status: "ERROR", Message: err.Error()}
	}
	if got.Hash != want.Hash {
		return &FileTestResult{File: file, Status: "SKIP", Message: fmt.Sprintf("Source changed since %s was generated", filepath.Base(gp))}
	}

	diff := cmp.Diff(want, got, cmpopts.EquateEmpty())
	if diff != "" {
		return &FileTestResult{File: file, Status: "FAIL", Message: "Token stream mismatch", Diff: diff}
	}
	return &FileTestResult{File: file, Status: "PASS", Message: fmt.Sprintf("%d tokens match", len(got.Tokens))}
}

func hasFailures(results TestSuiteResults) bool {
	for _, result := range results {
		if result.Status == "FAIL" || result.Status == "ERROR" {
			return true
		}
	}
	return false
}

func expandGlobPatterns(patterns string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]bool)
	for _, pattern := range strings.Fields(patterns) {
		files, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %s: %w", pattern, err)
		}
		for _, file := range files {
			if seen[file] {
				continue
			}
			if info, err := os.Stat(file); err == nil && info.Mode().IsRegular() {
				allFiles = append(allFiles, file)
				seen[file] = true
			}
		}
	}
	return allFiles, nil
}
