// idnatool is a CLI tool to convert and check internationalized
// domain names.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/mdiff"
	"github.com/creachadair/taskgroup"
	"github.com/natefinch/atomic"

	"github.com/idnakit/idnakit/idna"
)

func main() {
	log.SetFlags(0)

	root := &command.C{
		Name:  filepath.Base(os.Args[0]),
		Usage: "command [flags] ...\nhelp [command]",
		Help:  "A command-line tool to convert and check internationalized domain names.",
		Commands: []*command.C{
			{
				Name:  "ascii",
				Usage: "<name> ...",
				Help: `Convert domain names to their ASCII (ACE) form.

Each argument is converted independently and printed on its own line.`,
				SetFlags: command.Flags(flax.MustBind, &convertArgs),
				Run:      command.Adapt(runASCII),
			},
			{
				Name:  "unicode",
				Usage: "<name> ...",
				Help:  `Convert domain names from their ASCII (ACE) form to Unicode.`,
				Run:   command.Adapt(runUnicode),
			},
			{
				Name:  "check",
				Usage: "<path>",
				Help: `Check every name in a file, one per line.

Blank lines and lines starting with '#' are skipped. Each remaining
line must convert cleanly to ACE form.`,
				SetFlags: command.Flags(flax.MustBind, &convertArgs),
				Run:      command.Adapt(runCheck),
			},
			{
				Name:  "fmt",
				Usage: "<path>",
				Help: `Rewrite a file of domain names into canonical ACE form.

Blank lines and lines starting with '#' are preserved verbatim. By
default the file is updated in place.`,
				SetFlags: command.Flags(flax.MustBind, &fmtArgs),
				Run:      command.Adapt(runFmt),
			},

			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx).MergeFlags(true)
	command.RunOrFail(env, os.Args[1:])
}

var convertArgs struct {
	NonTransitional bool `flag:"nontransitional,Keep deviation codepoints instead of rewriting them"`
	Relaxed         bool `flag:"relaxed,Allow ASCII outside the STD3 letter-digit-hyphen repertoire"`
	SkipHyphenCheck bool `flag:"skip-hyphen-check,Do not reject labels with misplaced hyphens"`
}

var fmtArgs struct {
	NonTransitional bool `flag:"nontransitional,Keep deviation codepoints instead of rewriting them"`
	Diff            bool `flag:"d,Output a diff of changes instead of rewriting the file"`
}

// profile builds the conversion profile selected by the flags.
func profile(nonTransitional, relaxed, skipHyphens bool) *idna.Profile {
	return idna.New(
		idna.Transitional(!nonTransitional),
		idna.StrictDomainName(!relaxed),
		idna.CheckHyphens(!skipHyphens),
		idna.ReportDisallowed(func(r rune) {
			log.Printf("warning: disallowed codepoint %#U", r)
		}),
	)
}

func runASCII(env *command.Env, names ...string) error {
	if len(names) == 0 {
		return errors.New("at least one name is required")
	}
	p := profile(convertArgs.NonTransitional, convertArgs.Relaxed, convertArgs.SkipHyphenCheck)
	for _, name := range names {
		ascii, err := p.ToASCII(name)
		if err != nil {
			return fmt.Errorf("converting %q: %w", name, err)
		}
		fmt.Fprintln(env, ascii)
	}
	return nil
}

func runUnicode(env *command.Env, names ...string) error {
	if len(names) == 0 {
		return errors.New("at least one name is required")
	}
	for _, name := range names {
		u, err := idna.ToUnicode(name)
		if err != nil {
			return fmt.Errorf("converting %q: %w", name, err)
		}
		fmt.Fprintln(env, u)
	}
	return nil
}

func runCheck(env *command.Env, path string) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Failed to read names file: %w", err)
	}
	p := profile(convertArgs.NonTransitional, convertArgs.Relaxed, convertArgs.SkipHyphenCheck)

	lines := strings.Split(string(bs), "\n")
	errs := make([]error, len(lines))
	g := taskgroup.New(nil)
	for i, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		g.Go(func() error {
			if _, err := p.ToASCII(name); err != nil {
				errs[i] = fmt.Errorf("line %d: %w", i+1, err)
			}
			return nil
		})
	}
	g.Wait()

	bad := 0
	for _, err := range errs {
		if err != nil {
			fmt.Fprintln(env, err)
			bad++
		}
	}
	switch bad {
	case 0:
		fmt.Fprintln(env, "All names are valid")
		return nil
	case 1:
		return errors.New("file has 1 invalid name")
	default:
		return fmt.Errorf("file has %d invalid names", bad)
	}
}

func runFmt(env *command.Env, path string) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Failed to read names file: %w", err)
	}
	p := profile(fmtArgs.NonTransitional, false, false)

	lines := strings.Split(string(bs), "\n")
	out := make([]string, len(lines))
	var convErrs []error
	for i, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "#") {
			out[i] = line
			continue
		}
		ascii, err := p.ToASCII(name)
		if err != nil {
			convErrs = append(convErrs, fmt.Errorf("line %d: %w", i+1, err))
			out[i] = line
			continue
		}
		out[i] = ascii
	}

	for _, err := range convErrs {
		fmt.Fprintln(env, err)
	}

	clean := []byte(strings.Join(out, "\n"))
	changed := !bytes.Equal(bs, clean)

	if changed {
		if fmtArgs.Diff {
			lhs, rhs := strings.Split(string(bs), "\n"), strings.Split(string(clean), "\n")
			diff := mdiff.New(lhs, rhs).AddContext(3)
			mdiff.FormatUnified(os.Stdout, diff, &mdiff.FileInfo{
				Left:  "a/" + path,
				Right: "b/" + path,
			})
			return errors.New("File needs reformatting, rerun without -d to fix")
		}
		if len(convErrs) > 0 {
			return errors.New("Cannot reformat file due to conversion errors")
		}
		if err := atomic.WriteFile(path, bytes.NewReader(clean)); err != nil {
			return fmt.Errorf("Failed to reformat: %w", err)
		}
	}

	return nil
}
