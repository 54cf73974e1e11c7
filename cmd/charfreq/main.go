/*
 * Copyright (c) 2021 Gilles Chehade <gilles@poolp.org>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/poolpOrg/charfreq/context"
	"github.com/poolpOrg/charfreq/histogram"
	"github.com/poolpOrg/charfreq/logging"
	"golang.org/x/mod/semver"
	"golang.org/x/term"
)

const VERSION = "v0.1.0"

var checkMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).SetString("✓")

func main() {
	var opt_upper bool
	var opt_threshold float64
	var opt_verbose bool
	var opt_trace string
	var opt_version bool

	flag.BoolVar(&opt_upper, "upper", false, "fold characters to uppercase instead of lowercase")
	flag.Float64Var(&opt_threshold, "threshold", 0, "minimum percentage a character must reach to be displayed")
	flag.BoolVar(&opt_verbose, "verbose", false, "enable verbose output")
	flag.StringVar(&opt_trace, "trace", "", "display trace logs, comma-separated list of subsystems")
	flag.BoolVar(&opt_version, "version", false, "display version and exit")
	flag.Parse()

	if !semver.IsValid(VERSION) {
		panic("invalid version string: " + VERSION)
	}

	if opt_version {
		fmt.Println(VERSION)
		os.Exit(0)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	username := "?"
	if pwUser, err := user.Current(); err == nil {
		username = pwUser.Username
	}

	ctx := context.NewContext()
	ctx.SetHostname(strings.ToLower(hostname))
	ctx.SetUsername(username)
	ctx.SetProcessID(os.Getpid())
	ctx.SetCommandLine(strings.Join(os.Args, " "))
	ctx.SetStdin(os.Stdin)
	ctx.SetStdout(os.Stdout)
	ctx.SetStderr(os.Stderr)

	logger := logging.NewLogger(ctx.GetStderr())
	if opt_verbose {
		logger.EnableInfo()
	}
	if opt_trace != "" {
		logger.EnableTrace(opt_trace)
	}
	ctx.SetLogger(logger)

	if flag.NArg() != 0 {
		logger.Error("%s: too many parameters", flag.CommandLine.Name())
		os.Exit(1)
	}

	os.Exit(charfreq(ctx, !opt_upper, opt_threshold))
}

func charfreq(ctx *context.Context, foldCase bool, threshold float64) int {
	logger := ctx.GetLogger()
	logger.Trace("main", "%s@%s: pid=%d: %s",
		ctx.GetUsername(), ctx.GetHostname(), ctx.GetProcessID(), ctx.GetCommandLine())

	if f, isFile := ctx.GetStdin().(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
		logger.Warn("reading from terminal, ^D ends input")
	}

	t0 := time.Now()

	h := histogram.New()
	nbytes, err := h.AddReader(ctx.GetStdin(), foldCase)
	if err != nil {
		logger.Error("%s: could not read input: %s", flag.CommandLine.Name(), err)
		return 1
	}
	logger.Trace("stdin", "consumed %s (%d bytes)", humanize.Bytes(uint64(nbytes)), nbytes)

	fmt.Fprintln(ctx.GetStdout(), h.Render(threshold))

	logger.Info("%s counted %s characters, %s distinct, from %s of input in %s",
		checkMark,
		humanize.Comma(int64(h.Total())),
		humanize.Comma(int64(h.Distinct())),
		humanize.Bytes(uint64(nbytes)),
		time.Since(t0))

	return 0
}
