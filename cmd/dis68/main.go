// Package main provides dis68, which lists a raw 68000 binary as assembly.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/grimdork/climate/arg"
	"github.com/sirupsen/logrus"

	"github.com/Urethramancer/dis68k/disassembler"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, disassembles the named file and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opt := arg.New("dis68")
	opt.SetDefaultHelp(true)
	opt.SetOption("", "", "origin", "Load address of the first byte (decimal, or 0x hex).", "0", false, arg.VarString, nil)
	opt.SetOption("", "o", "output", "Write the listing to this file instead of stdout.", "", false, arg.VarString, nil)
	opt.SetFlag("", "", "fix", "Correct known rendering defects of the classic output.")
	opt.SetFlag("", "", "labels", "Name branch and call destinations reached from the origin.")
	opt.SetFlag("", "v", "verbose", "Log decoder diagnostics to stderr.")
	opt.SetPositional("INPUTFILE", "Raw 68000 binary image to list.", "", false, arg.VarString)
	err := opt.Parse(args)
	if err != nil && !errors.Is(err, arg.ErrNoArgs) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	input := opt.GetPosString("INPUTFILE")
	if input == "" {
		fmt.Fprintf(stderr, "Usage: dis68 [options] <inputfile>\n")
		fmt.Fprintf(stderr, "Run 'dis68 -h' to list the options.\n")
		return 1
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	if opt.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	output := opt.GetString("output")
	err = disassemble(stdout, input, output, opt.GetString("origin"), opt.GetBool("fix"), opt.GetBool("labels"), log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if output != "" {
		fmt.Fprintf(stdout, "Disassembly written to %s\n", output)
	}
	return 0
}

func disassemble(stdout io.Writer, input, output, origin string, fix, labels bool, log *logrus.Logger) (err error) {
	base, err := strconv.ParseUint(origin, 0, 32)
	if err != nil {
		return fmt.Errorf("parsing origin %q: %w", origin, err)
	}

	// Read the binary file directly. Do NOT modify it.
	code, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	opts := []disassembler.Option{disassembler.WithLogger(log)}
	if fix {
		opts = append(opts, disassembler.WithCorrections())
	}
	d := disassembler.New(opts...)
	log.WithFields(logrus.Fields{
		"file":   input,
		"bytes":  len(code),
		"origin": fmt.Sprintf("%08X", base),
	}).Debug("disassembling")

	w := stdout
	if output != "" {
		f, ferr := os.Create(output)
		if ferr != nil {
			return fmt.Errorf("creating output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		w = f
	}

	if err := d.WriteListing(w, code, uint32(base), labels); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
