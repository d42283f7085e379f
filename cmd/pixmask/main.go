// Command pixmask decodes and encodes APOGEE pixel mask values.
//
// Usage:
//
//	pixmask [flags] [value ...]
//
// Each value (decimal or 0x hex) is printed with the names of its set bits.
//
// Examples:
//
//	pixmask 257
//	pixmask 0x204 5
//	pixmask -encode "BADPIX|LITTROW_GHOST"
//	pixmask -width 8 300
//	pixmask -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-apogee/flags"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pixmask", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list := fs.Bool("list", false, "list the named mask bits")
	encode := fs.String("encode", "", `encode "|"-separated bit names into a value`)
	widthBits := fs.Int("width", int(flags.DefaultWidth), "mask width in bits (8, 16, 32 or 64)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pixmask [flags] [value ...]\n\n")
		fmt.Fprintf(stderr, "Decodes APOGEE pixel mask values into bit names.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  pixmask 257\n")
		fmt.Fprintf(stderr, "  pixmask -encode \"BADPIX|LITTROW_GHOST\"\n")
		fmt.Fprintf(stderr, "  pixmask -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	width, err := flags.ParseWidth(*widthBits)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if *list {
		return printList(stdout, stderr)
	}

	if *encode != "" {
		f, err := flags.ParseFlag(*encode)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if uint64(f) > width.Max() {
			fmt.Fprintf(stderr, "error: %s does not fit %s\n", f, width)
			return 1
		}
		fmt.Fprintf(stdout, "%d\t%#x\n", uint64(f), uint64(f))
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	return printDecoded(stdout, stderr, fs.Args(), width)
}

func printList(stdout, stderr io.Writer) int {
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bit\tValue\tName\n---\t-----\t----\n"); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to write output header: %v\n", err)
		return 1
	}
	for _, d := range flags.Definitions() {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\n", d.Bit, uint64(d.Flag), d.Name); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: failed to write output row: %v\n", err)
			return 1
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to flush output: %v\n", err)
		return 1
	}
	return 0
}

func printDecoded(stdout, stderr io.Writer, values []string, width flags.Width) int {
	status := 0
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, raw := range values {
		v, err := strconv.ParseUint(strings.TrimSpace(raw), 0, 64)
		if err != nil {
			fmt.Fprintf(stderr, "warning: invalid value %q\n", raw)
			status = 1
			continue
		}
		if v > width.Max() {
			fmt.Fprintf(stderr, "warning: %d does not fit %s\n", v, width)
			status = 1
		}
		names := flags.Decode(flags.Flag(v))
		if len(names) == 0 {
			names = []string{"-"}
		}
		if _, err := fmt.Fprintf(tw, "%d\t%#x\t%s\n", v, v, strings.Join(names, " ")); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: failed to write output row: %v\n", err)
			return 1
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to flush output: %v\n", err)
		return 1
	}
	return status
}
