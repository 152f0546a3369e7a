package parser

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const maxLineSize = 1 << 20

// SplitHands splits a raw log into hand blocks. A block starts at every line
// beginning with the hand header prefix; text before the first header is
// discarded.
func SplitHands(text string) ([]string, error) {
	var blocks []string
	err := ScanBlocks(strings.NewReader(text), func(block string) error {
		blocks = append(blocks, block)
		return nil
	})
	return blocks, err
}

// ScanBlocks reads r line by line and calls fn with every complete hand
// block. A block holding a line longer than maxLineSize is dropped and the
// scan goes on with the next header. It stops at the first error from r or fn.
func ScanBlocks(r io.Reader, fn func(block string) error) error {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		cur     strings.Builder
		inBlock bool
		broken  bool
	)
	flush := func() error {
		if !inBlock {
			return nil
		}
		block := strings.TrimSpace(cur.String())
		cur.Reset()
		if broken {
			broken = false
			return nil
		}
		if block == "" {
			return nil
		}
		return fn(block)
	}

	first := true
	for {
		raw, tooLong, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		switch {
		case tooLong:
			if inBlock {
				broken = true
			}
		case raw != "" || err == nil:
			line := strings.TrimRight(raw, "\r\n")
			if first {
				line = strings.TrimPrefix(line, "\ufeff")
				first = false
			}
			if strings.HasPrefix(strings.TrimSpace(line), HeaderPrefix) {
				if err := flush(); err != nil {
					return err
				}
				inBlock = true
				line = strings.TrimSpace(line)
			}
			if inBlock {
				cur.WriteString(line)
				cur.WriteByte('\n')
			}
		}
		if err != nil {
			return flush()
		}
	}
}

// readLine returns the next line including its newline. Lines longer than
// maxLineSize are consumed and reported as tooLong with an empty line.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, err := br.ReadSlice('\n')
		if len(buf)+len(chunk) > maxLineSize {
			tooLong, buf = true, nil
		} else if !tooLong {
			buf = append(buf, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return string(buf), tooLong, err
	}
}
