package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/xplshn/fixlua/pkg/cli"
)

type Feature int

const (
	FeatCComments Feature = iota
	FeatPrintShorthand
	FeatBangNe
	FeatGlyphs
	FeatP8Esc
	FeatIntDiv
	FeatDirectives
	FeatCount
)

type Warning int

const (
	WarnGlyphPassthrough Warning = iota
	WarnBangNe
	WarnCComments
	WarnP8Esc
	WarnPrintShorthand
	WarnPedantic
	WarnCount
)

type Info struct {
	Name        string
	Enabled     bool
	Description string
}

const (
	// DefaultMaxTokenLen caps the length of one lexical element.
	DefaultMaxTokenLen = math.MaxInt32
	// DefaultMaxLines is the line count at which a chunk is rejected.
	DefaultMaxLines = math.MaxInt32
)

// DirectivePrefix starts a line comment whose remainder is a list of flags
// applied to the rest of the chunk, e.g. `-- [fixlua]: -Fno-glyphs`.
const DirectivePrefix = "[fixlua]:"

type Config struct {
	Features    map[Feature]Info
	Warnings    map[Warning]Info
	FeatureMap  map[string]Feature
	WarningMap  map[string]Warning
	StdName     string
	MaxTokenLen int
	MaxLines    int
}

func NewConfig() *Config {
	cfg := &Config{
		Features:    make(map[Feature]Info),
		Warnings:    make(map[Warning]Info),
		FeatureMap:  make(map[string]Feature),
		WarningMap:  make(map[string]Warning),
		StdName:     "p8",
		MaxTokenLen: DefaultMaxTokenLen,
		MaxLines:    DefaultMaxLines,
	}

	features := map[Feature]Info{
		FeatCComments:      {"c-comments", true, "Recognize C-style '//' line comments."},
		FeatPrintShorthand: {"print-shorthand", true, "Treat '?' at the start of a line as the print statement."},
		FeatBangNe:         {"bang-ne", true, "Accept '!=' as a spelling of '~='."},
		FeatGlyphs:         {"glyphs", true, "Decode multi-byte UTF-8 glyphs in strings to charset bytes."},
		FeatP8Esc:          {"p8-esc", true, "Recognize the '\\*' '\\#' '\\-' '\\|' '\\+' '\\^' string escapes."},
		FeatIntDiv:         {"int-div", true, "Scan '\\' as the integer division operator."},
		FeatDirectives:     {"directives", true, "Apply `-- [fixlua]:` flag directives found in comments."},
	}

	warnings := map[Warning]Info{
		WarnGlyphPassthrough: {"glyph-passthrough", true, "Warn when a non-ASCII byte is copied into a string unchanged."},
		WarnBangNe:           {"bang-ne", false, "Warn on usage of '!=' instead of '~='."},
		WarnCComments:        {"c-comments", false, "Warn on usage of non-standard C-style '//' comments."},
		WarnP8Esc:            {"p8-esc", false, "Warn on usage of the charset short escapes like '\\*'."},
		WarnPrintShorthand:   {"print-shorthand", false, "Warn on usage of the '?' print shorthand."},
		WarnPedantic:         {"pedantic", false, "Issue all warnings demanded by the strict standard."},
	}

	cfg.Features, cfg.Warnings = features, warnings
	for ft, info := range features {
		cfg.FeatureMap[info.Name] = ft
	}
	for wt, info := range warnings {
		cfg.WarningMap[info.Name] = wt
	}

	return cfg
}

// Clone returns an independent copy, so directives in one chunk do not leak
// into the next.
func (c *Config) Clone() *Config {
	n := *c
	n.Features = make(map[Feature]Info, len(c.Features))
	n.Warnings = make(map[Warning]Info, len(c.Warnings))
	for k, v := range c.Features {
		n.Features[k] = v
	}
	for k, v := range c.Warnings {
		n.Warnings[k] = v
	}
	return &n
}

func (c *Config) SetFeature(ft Feature, enabled bool) {
	if info, ok := c.Features[ft]; ok {
		info.Enabled = enabled
		c.Features[ft] = info
	}
}

func (c *Config) IsFeatureEnabled(ft Feature) bool { return c.Features[ft].Enabled }

func (c *Config) SetWarning(wt Warning, enabled bool) {
	if info, ok := c.Warnings[wt]; ok {
		info.Enabled = enabled
		c.Warnings[wt] = info
	}
}

func (c *Config) IsWarningEnabled(wt Warning) bool { return c.Warnings[wt].Enabled }

// ApplyStd switches every dialect feature for a language standard. "p8" is
// the full dialect; "lua" is the plain language, where the extended syntax
// scans as ordinary punctuation.
func (c *Config) ApplyStd(stdName string) error {
	isPedantic := c.IsWarningEnabled(WarnPedantic)

	type stdSettings struct {
		feature  Feature
		p8Value  bool
		luaValue bool
	}

	settings := []stdSettings{
		{FeatCComments, true, false},
		{FeatPrintShorthand, true, false},
		{FeatBangNe, true, false},
		{FeatGlyphs, true, false},
		{FeatP8Esc, true, false},
		{FeatIntDiv, true, false},
		{FeatDirectives, true, !isPedantic},
	}

	switch stdName {
	case "p8":
		for _, s := range settings {
			c.SetFeature(s.feature, s.p8Value)
		}
		c.SetWarning(WarnBangNe, isPedantic)
		c.SetWarning(WarnCComments, isPedantic)
		c.SetWarning(WarnP8Esc, isPedantic)
		c.SetWarning(WarnPrintShorthand, isPedantic)
	case "lua":
		for _, s := range settings {
			c.SetFeature(s.feature, s.luaValue)
		}
		c.SetWarning(WarnBangNe, true)
		c.SetWarning(WarnCComments, true)
		c.SetWarning(WarnP8Esc, true)
		c.SetWarning(WarnPrintShorthand, true)
	default:
		return fmt.Errorf("unsupported standard '%s'. Supported: 'p8', 'lua'", stdName)
	}
	c.StdName = stdName
	return nil
}

func (c *Config) applyFlag(flag string) {
	trimmed := strings.TrimPrefix(flag, "-")
	isNo := strings.HasPrefix(trimmed, "Wno-") || strings.HasPrefix(trimmed, "Fno-")
	enable := !isNo

	var name string
	var isWarning bool

	switch {
	case strings.HasPrefix(trimmed, "W"):
		name = strings.TrimPrefix(trimmed, "W")
		if isNo {
			name = strings.TrimPrefix(name, "no-")
		}
		isWarning = true
	case strings.HasPrefix(trimmed, "F"):
		name = strings.TrimPrefix(trimmed, "F")
		if isNo {
			name = strings.TrimPrefix(name, "no-")
		}
	default:
		name = trimmed
		isWarning = true
	}

	if name == "all" && isWarning {
		for i := Warning(0); i < WarnCount; i++ {
			if i != WarnPedantic {
				c.SetWarning(i, enable)
			}
		}
		return
	}

	if name == "pedantic" && isWarning {
		c.SetWarning(WarnPedantic, true)
		return
	}

	if isWarning {
		if w, ok := c.WarningMap[name]; ok {
			c.SetWarning(w, enable)
		}
	} else {
		if f, ok := c.FeatureMap[name]; ok {
			c.SetFeature(f, enable)
		}
	}
}

func (c *Config) ProcessFlags(visitFlag func(fn func(name string))) {
	visitFlag(func(name string) {
		if name == "Wall" || name == "Wno-all" || name == "pedantic" {
			c.applyFlag("-" + name)
		}
	})
	visitFlag(func(name string) {
		if name != "Wall" && name != "Wno-all" && name != "pedantic" {
			c.applyFlag("-" + name)
		}
	})
}

func (c *Config) ProcessDirectiveFlags(flagStr string) {
	for _, flag := range strings.Fields(flagStr) {
		c.applyFlag(flag)
	}
}

// Directive reports whether a line comment body is a flag directive and
// returns its flags.
func Directive(comment string) (string, bool) {
	trimmed := strings.TrimSpace(comment)
	if !strings.HasPrefix(trimmed, DirectivePrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, DirectivePrefix)), true
}

// SetupFlagGroups registers the -W and -F switch families, plus -Wall and
// -Wno-all, on fs. Once fs is parsed, ProcessFlags(fs.Visit) applies them in
// command-line order.
func (c *Config) SetupFlagGroups(fs *cli.FlagSet) {
	var all, noAll bool
	fs.Bool(&all, "Wall", "", false, "Enable all warnings")
	fs.Bool(&noAll, "Wno-all", "", false, "Disable all warnings")

	warningFlags := make([]cli.FlagGroupEntry, 0, WarnCount)
	for i := Warning(0); i < WarnCount; i++ {
		info := c.Warnings[i]
		warningFlags = append(warningFlags, cli.FlagGroupEntry{
			Name:     info.Name,
			Prefix:   "W",
			Usage:    info.Description,
			Enabled:  &info.Enabled,
			Disabled: new(bool),
		})
	}
	featureFlags := make([]cli.FlagGroupEntry, 0, FeatCount)
	for i := Feature(0); i < FeatCount; i++ {
		info := c.Features[i]
		featureFlags = append(featureFlags, cli.FlagGroupEntry{
			Name:     info.Name,
			Prefix:   "F",
			Usage:    info.Description,
			Enabled:  &info.Enabled,
			Disabled: new(bool),
		})
	}
	fs.AddFlagGroup("Warning Flags", "Enable or disable specific warnings", "warning flag", "Available Warning Flags:", warningFlags)
	fs.AddFlagGroup("Feature Flags", "Enable or disable specific features", "feature flag", "Available Features:", featureFlags)
}
