package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// maxScannerBuffer is the maximum line length the decoder can handle (1MB).
// Tool results embedded in assistant messages can be very large.
const maxScannerBuffer = 1 << 20

// Decoder reads stream-json lines from an io.Reader and parses each one into
// a Record. Unlike the underlying reader, parsing never fails: malformed
// lines decode to KindUnknown records per the fail-soft contract.
type Decoder struct {
	scanner *bufio.Scanner

	dedupe  bool
	lastSum uint64
	hasLast bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithDedupe drops any line that is byte-identical to the immediately
// preceding line, compared by xxhash digest. This guards against replayed
// events when a session transcript is re-emitted on resume.
func WithDedupe() Option {
	return func(d *Decoder) { d.dedupe = true }
}

// NewDecoder creates a decoder reading NDJSON from r. The scanner buffer is
// sized to handle lines up to 1MB.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScannerBuffer)
	d := &Decoder{scanner: scanner}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Next reads and parses the next line. It returns io.EOF at end of stream
// and a wrapped read error if the underlying reader fails. Empty and
// whitespace-only lines are skipped. Malformed lines are not errors; they
// come back as KindUnknown records.
func (d *Decoder) Next() (Record, error) {
	for d.scanner.Scan() {
		line := strings.TrimSpace(d.scanner.Text())
		if line == "" {
			continue
		}
		if d.dedupe {
			sum := xxhash.Sum64String(line)
			if d.hasLast && sum == d.lastSum {
				continue
			}
			d.lastSum = sum
			d.hasLast = true
		}
		return ParseLine([]byte(line)), nil
	}
	if err := d.scanner.Err(); err != nil {
		return Record{Kind: KindUnknown}, fmt.Errorf("reading stream: %w", err)
	}
	return Record{Kind: KindUnknown}, io.EOF
}

// Stream reads all records and sends them to the provided channel. It blocks
// until the reader is exhausted, the context is cancelled, or a read error
// occurs. The records channel is closed when Stream returns.
func (d *Decoder) Stream(ctx context.Context, records chan<- Record) error {
	defer close(records)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := d.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case records <- rec:
		}
	}
}
