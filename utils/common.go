// Common package contains the sequence primitives and FASTA plumbing shared by every tool.
// Exporting these functions from the Common package keeps each tool focused on its own analysis.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA entry. Seq is upper-cased with line breaks removed.
type Record struct {
	ID  string
	Seq string
}

type FastaHandler func(id string, seq string, opts map[string]interface{}) error

// StreamFastaWithOpts streams a FASTA file record by record, calling handler once per record.
// Gzipped input is detected from its magic bytes. Sequences are upper-cased.
//
// The opts map is passed through untouched so handlers can receive writers, counters,
// thresholds and so on without a dedicated struct per tool.
func StreamFastaWithOpts(file string, handler FastaHandler, opts map[string]interface{}) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader, closeFn, err := maybeGunzip(f)
	if err != nil {
		return err
	}
	defer closeFn()

	return streamFasta(reader, handler, opts)
}

// maybeGunzip sniffs the gzip magic number and wraps f accordingly.
func maybeGunzip(f *os.File) (io.Reader, func(), error) {
	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("failed to rewind file: %w", err)
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gr, func() { gr.Close() }, nil
	}
	return f, func() {}, nil
}

func streamFasta(r io.Reader, handler FastaHandler, opts map[string]interface{}) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var currentID string
	var buffer []byte
	seen := false

	flush := func() error {
		if !seen {
			return nil
		}
		if err := handler(currentID, string(buffer), opts); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = recordID(line)
			buffer = buffer[:0]
			seen = true
			continue
		}
		if !seen {
			return fmt.Errorf("sequence data before first header: %q", line)
		}
		buffer = append(buffer, strings.ToUpper(line)...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}

// recordID keeps the first word of a header line.
func recordID(header string) string {
	fields := strings.Fields(strings.TrimPrefix(header, ">"))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LoadRecords reads every record of a FASTA file into memory.
func LoadRecords(file string) ([]Record, error) {
	var records []Record
	err := StreamFastaWithOpts(file, func(id, seq string, _ map[string]interface{}) error {
		records = append(records, Record{ID: id, Seq: seq})
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadSeq returns the sequence of the first record in file.
func LoadSeq(file string) (string, error) {
	records, err := LoadRecords(file)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("no FASTA records in %s", file)
	}
	return records[0].Seq, nil
}

// WrapFasta breaks seq into lines of at most width characters, each newline terminated.
func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end])
		out.WriteByte('\n')
	}
	return out.String()
}

// WriteFastaRecord writes one header line followed by the wrapped sequence.
func WriteFastaRecord(w io.Writer, header, seq string) error {
	_, err := fmt.Fprintf(w, ">%s\n%s", header, WrapFasta(seq, 60))
	return err
}

// OpenOutput returns a buffered writer to path, or to stdout when path is empty.
// The returned close function flushes and closes the underlying file.
func OpenOutput(path string) (*bufio.Writer, func() error, error) {
	if path == "" {
		w := bufio.NewWriter(os.Stdout)
		return w, w.Flush, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	w := bufio.NewWriter(file)
	return w, func() error {
		if err := w.Flush(); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}, nil
}
