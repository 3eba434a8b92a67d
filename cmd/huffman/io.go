package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

var (
	errPackFromStdin    = errors.New("cannot pack with stdin as input")
	errStdoutIsTerminal = errors.New("the output path must be given when reading from stdin and stdout is a terminal")
)

func isTerminalFd(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// resolvedInput names where pack/unpack reads its source bytes from. The
// zero value denotes stdin.
type resolvedInput struct {
	path string
}

func parseInputArg(arg string) resolvedInput {
	if strings.TrimSpace(arg) == "-" {
		return resolvedInput{}
	}
	return resolvedInput{path: arg}
}

func (in resolvedInput) isStdin() bool { return in.path == "" }

func (in resolvedInput) String() string {
	if in.isStdin() {
		return "<stdin>"
	}
	return in.path
}

// openSeekable opens the input as a seekable file. Only valid for
// non-stdin inputs; pack rejects stdin before ever calling this.
func (in resolvedInput) openSeekable() (*os.File, error) {
	return os.Open(in.path)
}

// openStream opens the input for unpack, which never needs to seek back.
func (in resolvedInput) openStream() (io.ReadCloser, error) {
	if in.isStdin() {
		if isTerminalFd(os.Stdin.Fd()) {
			log.Warn("there are no pipes which the program reads from; the result will be empty")
			return io.NopCloser(strings.NewReader("")), nil
		}
		return io.NopCloser(os.Stdin), nil
	}
	return in.openSeekable()
}

// resolvedOutput names where pack/unpack writes its decoded or encoded
// bytes. The zero value denotes stdout.
type resolvedOutput struct {
	path string
}

func parseOutputArg(arg string) resolvedOutput {
	if strings.TrimSpace(arg) == "-" {
		return resolvedOutput{}
	}
	return resolvedOutput{path: arg}
}

func (out resolvedOutput) isStdout() bool { return out.path == "" }

func (out resolvedOutput) String() string {
	if out.isStdout() {
		return "<stdout>"
	}
	return out.path
}

func (out resolvedOutput) open(overwrite bool) (io.WriteCloser, error) {
	if out.isStdout() {
		return nopWriteCloser{os.Stdout}, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	return os.OpenFile(out.path, flags, 0o644)
}

// delete removes a partially written output file after a failed
// pack/unpack. It is a no-op for stdout.
func (out resolvedOutput) delete() error {
	if out.isStdout() {
		return nil
	}
	err := os.Remove(out.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// deduceOutputPath mirrors the original CLI's extension inference for
// when -o/--output isn't given: pack appends ".hc"; unpack strips a
// trailing ".hc" or else appends ".unpacked", warning when the input
// lacks the ".hc" extension.
func deduceOutputPath(inputPath string, forPack bool) string {
	if forPack {
		return inputPath + ".hc"
	}
	if filepath.Ext(inputPath) == ".hc" {
		return strings.TrimSuffix(inputPath, ".hc")
	}
	log.Warnf("the input file %q doesn't have the extension `hc`; the output file extension will be `unpacked`", inputPath)
	return inputPath + ".unpacked"
}

// resolveOutput determines the output target for a command: an explicit
// -o/--output flag always wins, then path-based deduction for a file
// input, then stdout for a stdin input — unless stdout is itself a
// terminal, which is refused.
func resolveOutput(explicit string, in resolvedInput, forPack bool) (resolvedOutput, error) {
	if explicit != "" {
		return parseOutputArg(explicit), nil
	}

	if !in.isStdin() {
		return resolvedOutput{path: deduceOutputPath(in.path, forPack)}, nil
	}

	if isTerminalFd(os.Stdout.Fd()) {
		return resolvedOutput{}, errStdoutIsTerminal
	}
	return resolvedOutput{}, nil
}
