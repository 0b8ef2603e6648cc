package crawler

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DecodeText converts fetched document bytes to a UTF-8 string as
// permissively as possible. The encoding is determined from the
// Content-Type label and the content itself (BOM, meta tags, sniffing);
// undecodable byte sequences are substituted rather than failing, so link
// extraction on broken content simply finds less instead of aborting.
func DecodeText(body []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(body, contentType)
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(body), enc.NewDecoder()))
	if err != nil {
		// A decoder that fails mid-stream degrades to dropping the invalid
		// sequences from the raw bytes.
		return strings.ToValidUTF8(string(body), "")
	}
	return string(decoded)
}
