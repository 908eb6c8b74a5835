// Package sauce reads the SAUCE metadata trailer that ANSI and NFO editors
// append to art files.
package sauce

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"time"

	"github.com/stlalpha/nfoview/internal/charset"
	"github.com/stlalpha/nfoview/internal/logging"
)

const (
	RecordSize   = 128
	CommentSize  = 64
	EOFMarker    = 0x1A
	commentTagSz = 5
)

var (
	recordID  = []byte("SAUCE")
	commentID = []byte("COMNT")
)

// Data types used by art files.
const (
	DataTypeNone      = 0
	DataTypeCharacter = 1
	DataTypeBinText   = 5
	DataTypeXBin      = 6
)

// Character file types.
const (
	FileTypeASCII      = 0
	FileTypeANSI       = 1
	FileTypeANSiMation = 2
)

var ErrInvalidRecord = errors.New("sauce: invalid record")

// Record is a parsed SAUCE trailer.
type Record struct {
	Version  string
	Title    string
	Author   string
	Group    string
	Date     time.Time
	FileSize uint32
	DataType uint8
	FileType uint8
	TInfo1   uint16
	TInfo2   uint16
	TInfo3   uint16
	TInfo4   uint16
	Flags    uint8
	TInfoS   string
	Comments []string
}

// IceColors reports whether the art uses high intensity backgrounds instead
// of blinking.
func (r *Record) IceColors() bool {
	return r != nil && r.Flags&0x01 != 0
}

// Width returns the character width recorded for text art, or 0.
func (r *Record) Width() int {
	if r == nil || r.DataType != DataTypeCharacter {
		return 0
	}
	return int(r.TInfo1)
}

// Height returns the line count recorded for text art, or 0.
func (r *Record) Height() int {
	if r == nil || r.DataType != DataTypeCharacter {
		return 0
	}
	return int(r.TInfo2)
}

// Parse decodes a 128-byte SAUCE record. Text fields are CP437.
func Parse(rec []byte) (*Record, error) {
	if len(rec) != RecordSize || !bytes.HasPrefix(rec, recordID) {
		return nil, ErrInvalidRecord
	}
	r := &Record{
		Version:  field(rec[5:7]),
		Title:    field(rec[7:42]),
		Author:   field(rec[42:62]),
		Group:    field(rec[62:82]),
		FileSize: binary.LittleEndian.Uint32(rec[90:94]),
		DataType: rec[94],
		FileType: rec[95],
		TInfo1:   binary.LittleEndian.Uint16(rec[96:98]),
		TInfo2:   binary.LittleEndian.Uint16(rec[98:100]),
		TInfo3:   binary.LittleEndian.Uint16(rec[100:102]),
		TInfo4:   binary.LittleEndian.Uint16(rec[102:104]),
		Flags:    rec[105],
		TInfoS:   field(rec[106:128]),
	}
	if date, err := time.Parse("20060102", string(rec[82:90])); err == nil {
		r.Date = date
	}
	return r, nil
}

// Split separates file content from its SAUCE trailer. The returned content
// excludes the record, the COMNT block and the EOF marker before them. rec
// is nil when data carries no record; data is then returned unchanged.
func Split(data []byte) (content []byte, rec *Record) {
	if len(data) < RecordSize {
		return data, nil
	}
	start := len(data) - RecordSize
	rec, err := Parse(data[start:])
	if err != nil {
		return data, nil
	}

	end := start
	if n := int(data[start+104]); n > 0 {
		commentStart := start - n*CommentSize - commentTagSz
		if commentStart >= 0 && bytes.Equal(data[commentStart:commentStart+commentTagSz], commentID) {
			block := data[commentStart+commentTagSz : start]
			for i := 0; i < n; i++ {
				rec.Comments = append(rec.Comments, field(block[i*CommentSize:(i+1)*CommentSize]))
			}
			end = commentStart
		} else {
			logging.Debug("sauce: %d comment lines announced but no COMNT block found", n)
		}
	}
	if end > 0 && data[end-1] == EOFMarker {
		end--
	}
	logging.Debug("sauce: record %q by %q stripped, %d content bytes remain", rec.Title, rec.Author, end)
	return data[:end], rec
}

// field decodes a space or NUL padded CP437 field.
func field(b []byte) string {
	return strings.TrimRight(string(charset.DecodeCP437(b)), " \x00")
}
