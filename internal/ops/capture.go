package ops

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/yanun0323/errors"
)

// ReadRecords loads every feed block record from a capture file. Hex files
// carry one block per line; bin files are a stream of u16 big-endian
// length-prefixed records.
func ReadRecords(path string, format Format) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case FormatHex:
		return readHexRecords(f)
	case FormatBin:
		return readBinRecords(f)
	}
	return nil, errors.Errorf("unknown input format: %s", format)
}

func readHexRecords(r io.Reader) ([][]byte, error) {
	var out [][]byte
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		buf, err := hex.DecodeString(strings.ReplaceAll(text, " ", ""))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		out = append(out, buf)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func readBinRecords(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var out [][]byte
	for {
		var prefix [2]byte
		if _, err := io.ReadFull(br, prefix[:]); err != nil {
			if err == io.EOF {
				return out, nil
			}
			return nil, errors.Wrapf(err, "record %d length prefix", len(out))
		}
		buf := make([]byte, binary.BigEndian.Uint16(prefix[:]))
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, errors.Wrapf(err, "record %d body", len(out))
		}
		out = append(out, buf)
	}
}
