package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV reads CSV, auto-detecting encoding and converting to UTF-8.
// Выгрузки 1С бывают в cp1251 и с ';' вместо ','.
func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	var dec io.Reader = br
	if !validUTF8Prefix(peek) {
		dec = transform.NewReader(br, detectCharset(peek).NewDecoder())
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if sep := guessSeparator(peek); sep != ',' {
		cr.Comma = sep
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// detectCharset: однобайтовые кириллические кодировки; по умолчанию cp1251.
func detectCharset(peek []byte) *charmap.Charmap {
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil {
		return charmap.Windows1251
	}
	switch strings.ToLower(det.Charset) {
	case "koi8-r":
		return charmap.KOI8R
	case "iso-8859-5":
		return charmap.ISO8859_5
	default:
		return charmap.Windows1251
	}
}

// validUTF8Prefix допускает обрезанную на границе Peek последнюю руну.
func validUTF8Prefix(b []byte) bool {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return true
		}
		b = b[:len(b)-1]
	}
	return utf8.Valid(b)
}

// guessSeparator смотрит на первую строку: ';' побеждает, если его больше, чем ','.
func guessSeparator(peek []byte) rune {
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
