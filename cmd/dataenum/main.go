// Command dataenum validates enumeration definition files and looks up members.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/suparena/dataenum"
	"github.com/suparena/dataenum/definition"
	"github.com/suparena/dataenum/errors"
	"github.com/suparena/dataenum/internal/config"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dataenum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		versionFlag = fs.Bool("version", false, "Show version information")
		vFlag       = fs.Bool("v", false, "Show version information (short)")
		envFile     = fs.String("env", "", "path to a .env file (default ./.env)")
		defs        = fs.String("defs", "", "definition files or directories; overrides "+config.EnvDefinitions)
		logLevel    = fs.String("log-level", "", "log level; overrides "+config.EnvLogLevel)
		typeName    = fs.String("type", "", "enumeration type to list or query")
		key         = fs.String("key", "", "primary key to look up")
		by          = fs.String("by", "", "unique attribute lookup as attr=value")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Handle version flag
	if *versionFlag || *vFlag {
		info := dataenum.GetVersionInfo()
		fmt.Fprintf(stdout, "dataenum version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return 0
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if *defs != "" {
		cfg.DefinitionPaths = config.SplitPaths(*defs)
	}
	if *logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 2
		}
	}
	if len(cfg.DefinitionPaths) == 0 {
		fmt.Fprintf(stderr, "error: no definitions given; use -defs or %s\n", config.EnvDefinitions)
		return 2
	}
	if *key != "" && *by != "" {
		fmt.Fprintln(stderr, "error: -key and -by are mutually exclusive")
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	set := definition.NewSet(logger)
	if err := set.LoadPaths(cfg.DefinitionPaths...); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	if *typeName == "" {
		if *key != "" || *by != "" {
			fmt.Fprintln(stderr, "error: -type is required for lookups")
			return 2
		}
		for _, name := range set.Names() {
			t, _ := set.Type(name)
			fmt.Fprintln(stdout, summary(t))
		}
		return 0
	}

	t, ok := set.Type(*typeName)
	if !ok {
		fmt.Fprintf(stderr, "error: unknown type %q\n", *typeName)
		return 1
	}

	var m *dataenum.Member
	switch {
	case *key != "":
		m, err = t.Get(parseKey(t, *key))
	case *by != "":
		attr, value, found := strings.Cut(*by, "=")
		if !found {
			fmt.Fprintln(stderr, "error: -by expects attr=value")
			return 2
		}
		m, err = lookupBy(t, attr, value)
	default:
		for _, m := range t.Members() {
			fmt.Fprintf(stdout, "%#v\n", m)
		}
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	fmt.Fprintf(stdout, "%#v\n", m)
	return 0
}

func summary(t *dataenum.Type) string {
	line := fmt.Sprintf("%s\t%d members\tkey=%s (%s)", t.Name(), t.Len(), t.PrimaryAttr(), t.KeyKind())
	if unique := t.UniqueAttrs(); len(unique) > 0 {
		line += "\tunique=" + strings.Join(unique, ",")
	}
	return line
}

func parseKey(t *dataenum.Type, s string) any {
	if t.KeyKind() == dataenum.KindInt {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return s
}

// lookupBy tries the value as text first, then as an integer.
func lookupBy(t *dataenum.Type, attr, value string) (*dataenum.Member, error) {
	m, err := t.GetBy(attr, value)
	if !errors.IsMemberDoesNotExist(err) {
		return m, err
	}
	if n, perr := strconv.ParseInt(value, 10, 64); perr == nil {
		return t.GetBy(attr, n)
	}
	return m, err
}
