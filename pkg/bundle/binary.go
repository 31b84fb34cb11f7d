// File: pkg/bundle/binary.go
package bundle

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// probeSize is how much of a file is inspected for binary content.
const probeSize = 512

// binaryExtensions are skipped without reading the file.
var binaryExtensions = map[string]bool{
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".a": true, ".o": true,
	".class": true, ".jar": true, ".pyc": true,
	".zip": true, ".gz": true, ".tar": true, ".7z": true, ".rar": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".ico": true,
	".pdf": true, ".mp3": true, ".mp4": true, ".wav": true,
}

// isBinaryFile reports whether a file looks binary: a known binary extension,
// a null byte in the first bytes, or more than 30% non-printable characters.
func isBinaryFile(path string) (bool, error) {
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return true, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, probeSize)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return looksBinary(buffer[:n]), nil
}

func looksBinary(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	// UTF-16 text carries null bytes but starts with a BOM.
	if bytes.HasPrefix(buf, []byte{0xFF, 0xFE}) || bytes.HasPrefix(buf, []byte{0xFE, 0xFF}) {
		return false
	}
	if bytes.IndexByte(buf, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range buf {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(buf)) > 0.3
}

// isPrintable treats ASCII text, common whitespace and bytes of multi-byte
// UTF-8 sequences as printable.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}
