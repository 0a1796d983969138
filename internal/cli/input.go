package cli

import (
	"io"
	"strings"
)

// lineReader returns one line per call, delimiter included.
type lineReader interface {
	ReadString(delim byte) (string, error)
}

// unbufferedReader reads one byte per call to the underlying reader, so
// nothing past the delimiter is consumed. It is used when the plot viewer
// reads keys from the same stream as the session.
type unbufferedReader struct {
	r   io.Reader
	buf [1]byte
}

func newUnbufferedReader(r io.Reader) *unbufferedReader {
	return &unbufferedReader{r: r}
}

// ReadString reads until delim or an error, like bufio.Reader.ReadString.
func (u *unbufferedReader) ReadString(delim byte) (string, error) {
	var b strings.Builder
	for {
		n, err := u.r.Read(u.buf[:])
		if n > 0 {
			b.WriteByte(u.buf[0])
			if u.buf[0] == delim {
				return b.String(), nil
			}
		}
		if err != nil {
			return b.String(), err
		}
	}
}
