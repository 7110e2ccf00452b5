package replicate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	//"compress/gzip"
	gzip "github.com/klauspost/pgzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ReadAll returns the whole content of path, decompressed when it is a gzip stream.
func ReadAll(path string) ([]byte, error) {
	var f, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var br = bufio.NewReader(f)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return io.ReadAll(br)
	}

	gr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", path, err)
	}
	defer gr.Close()
	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", path, err)
	}
	return data, nil
}

// CountReads counts fastq records in data, four lines per record.
func CountReads(data []byte) int {
	var lines = bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		lines++
	}
	return lines / 4
}

// WriteFile creates or truncates path with data, gzip-compressed when gz is true.
func WriteFile(path string, data []byte, gz bool) error {
	return writeBlock(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, data, gz)
}

// AppendFile appends data to path. A gzip file grows by one more gzip member,
// which readers decompress as a single stream.
func AppendFile(path string, data []byte, gz bool) error {
	return writeBlock(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, data, gz)
}

func writeBlock(path string, flag int, data []byte, gz bool) (err error) {
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	var gw *gzip.Writer
	if gz {
		gw = gzip.NewWriter(f)
		w = gw
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// a record block always ends a line
	if len(data) > 0 && data[len(data)-1] != '\n' {
		if _, err = w.Write([]byte{'\n'}); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if gw != nil {
		if err = gw.Close(); err != nil {
			return fmt.Errorf("gzip %s: %w", path, err)
		}
	}
	return nil
}

// CopyFile copies src to dst byte for byte.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// SameFile reports whether a and b name the same existing file.
func SameFile(a, b string) bool {
	ia, err := os.Stat(a)
	if err != nil {
		return false
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ia, ib)
}
