package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"
	"golang.org/x/term"
)

// openInput opens a named input; "-" is standard input.
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// writeOutput writes a whole artifact; "-" is standard output. Files are
// written beside the destination and renamed into place, so the
// destination is never left partially written.
func writeOutput(name string, data []byte) (err error) {
	if name == "-" {
		_, err = os.Stdout.Write(data)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return
	}
	atexit.Register(func() { os.Remove(tmp.Name()) })
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return
	}
	if err = tmp.Chmod(0o644); err != nil {
		return
	}
	if err = tmp.Close(); err != nil {
		return
	}

	return os.Rename(tmp.Name(), name)
}

// showListing prints a listing when asked to, or when standard output is
// an interactive terminal not receiving the artifact.
func showListing(output string, list func(w io.Writer) error) error {
	if output == "-" {
		if !listing {
			return nil
		}
		return list(os.Stderr)
	}

	if !listing && !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}

	return list(os.Stdout)
}
