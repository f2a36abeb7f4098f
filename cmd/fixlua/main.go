package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/xplshn/fixlua/pkg/cli"
	"github.com/xplshn/fixlua/pkg/config"
	"github.com/xplshn/fixlua/pkg/dump"
	"github.com/xplshn/fixlua/pkg/intern"
	"github.com/xplshn/fixlua/pkg/lexer"
	"github.com/xplshn/fixlua/pkg/token"
	"github.com/xplshn/fixlua/pkg/util"
)

func main() {
	app := cli.NewApp("fixlua")
	app.Synopsis = "[options] <file.lua> ..."
	app.Description = "Scans PICO-8 flavoured Lua and dumps the token stream, with numerals shown as 16.16 fixed point."
	app.Authors = []string{"xplshn"}
	app.Repository = "<https://github.com/xplshn/fixlua>"

	var (
		outFile     string
		std         string
		format      string
		pedantic    bool
		hex         bool
		quiet       bool
		stats       bool
		maxTokenLen int
		maxLines    int
	)

	fs := app.FlagSet
	fs.String(&outFile, "output", "o", "-", "Write the dump to <file> instead of stdout.", "file")
	fs.String(&std, "std", "", "p8", "Specify language standard (p8, lua)", "std")
	fs.String(&format, "format", "f", "text", "Dump format (text, json)", "format")
	fs.Bool(&pedantic, "pedantic", "", false, "Issue all warnings demanded by the current std.")
	fs.Bool(&hex, "hex", "x", false, "Show numerals as raw fixed-point bit patterns.")
	fs.Bool(&quiet, "quiet", "q", false, "Check the input only; print nothing but diagnostics.")
	fs.Bool(&stats, "stats", "s", false, "Report token and string counts per file.")
	fs.Int(&maxTokenLen, "max-token-len", "", config.DefaultMaxTokenLen, "Reject lexical elements longer than <n> bytes.", "n")
	fs.Int(&maxLines, "max-lines", "", config.DefaultMaxLines, "Reject chunks with <n> or more lines.", "n")

	cfg := config.NewConfig()
	cfg.SetupFlagGroups(fs)

	app.Action = func(inputFiles []string) error {
		if pedantic {
			cfg.SetWarning(config.WarnPedantic, true)
		}
		if err := cfg.ApplyStd(std); err != nil {
			util.Error(err)
		}
		// -W and -F switches override the standard
		cfg.ProcessFlags(fs.Visit)
		cfg.MaxTokenLen, cfg.MaxLines = maxTokenLen, maxLines

		if len(inputFiles) == 0 {
			util.Error(errors.New("no input files specified"))
		}
		if format != "text" && format != "json" {
			util.Error(fmt.Errorf("unknown dump format '%s'", format))
		}

		out, closeOut := openOutput(outFile)
		defer closeOut()

		strs := intern.NewStore()
		strs.PinAll(token.Words()...)

		failed := false
		for _, path := range inputFiles {
			toks, err := scanFile(cfg, path, strs)
			if err != nil {
				// keep going so every file gets its diagnostics
				fmt.Fprintln(util.Stderr, util.FormatError(err))
				failed = true
				continue
			}
			if stats {
				util.Info("%s: %s tokens, %s interned strings%s", path,
					humanize.Comma(int64(len(toks))), humanize.Comma(int64(strs.Len())), fileSize(path))
			}
			if !quiet {
				if err := writeDump(out, format, hex, dump.Records(toks)); err != nil {
					util.Error(err)
				}
			}
			// only reserved words outlive a chunk
			strs.Sweep(func(*intern.String) bool { return false })
		}
		if failed {
			return errScan
		}
		return nil
	}

	if err := app.Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

var errScan = errors.New("scanning failed")

func scanFile(cfg *config.Config, path string, strs *intern.Store) ([]token.Token, error) {
	src, err := util.OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	l := lexer.New(cfg, src, util.SourceName(path), strs)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			util.Warn(l.Config(), l.Warnings())
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOS {
			break
		}
	}
	// directives may have changed which warnings are on
	util.Warn(l.Config(), l.Warnings())
	return toks, nil
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return ", " + humanize.Bytes(uint64(info.Size()))
}

func writeDump(w io.Writer, format string, hex bool, recs []dump.Record) error {
	if format == "json" {
		return dump.WriteJSON(w, recs)
	}
	return dump.WriteText(w, recs, hex)
}

func openOutput(path string) (io.Writer, func()) {
	if path == "-" {
		bw := bufio.NewWriter(os.Stdout)
		return bw, func() { bw.Flush() }
	}
	f, err := os.Create(path)
	if err != nil {
		util.Error(err)
	}
	bw := bufio.NewWriter(f)
	return bw, func() {
		bw.Flush()
		f.Close()
	}
}
