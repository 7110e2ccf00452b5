package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// errDeclined is returned when the user answers no; fail prints declineMessage for it.
var errDeclined = errors.New("declined by user")

const declineMessage = "Okay, see you next time!"

// confirm asks question on w and reads the answer from r.
// Only "n" or "no" declines; no answer at all declines too.
func confirm(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprint(w, question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(w)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "no":
		return false
	}
	return true
}

// prepareDirs asks before writing into existing directories or the current one,
// then creates the missing directories. Nothing is created when the user declines.
func prepareDirs(opts *Options, stdin io.Reader, stderr io.Writer) error {
	var (
		r      = bufio.NewReader(stdin)
		dirs   []string
		create []string
	)
	if opts.Concatenate && opts.OutDir != "" {
		dirs = append(dirs, opts.OutDir)
	}
	if opts.Extract {
		dirs = append(dirs, opts.Dir)
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s exists and is not a directory", dir)
			}
			if !opts.Silent && !confirm(r, stderr, fmt.Sprintf("Warning: The directory \"%s\" already exists! Are you sure you want to continue (y/n)?", dir)) {
				return errDeclined
			}
			continue
		}
		create = append(create, dir)
	}
	if opts.Concatenate && opts.OutDir == "" && !opts.Silent {
		if !confirm(r, stderr, "Warning: Are you sure you want to write output to the current directory (y/n)?") {
			return errDeclined
		}
	}

	for _, dir := range create {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
