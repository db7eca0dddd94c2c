// Package vectors renders telegrams as named byte-array source
// literals, the golden fixtures other protocol implementations compare
// their encoder output against.
package vectors

import (
	"fmt"
	"io"
	"strings"

	"github.com/tormodg/gonxt/nxt"
)

// Vector is one named golden fixture.
type Vector struct {
	Name string
	Data []byte
}

// Render formats the vector as a single const line. The spacing matches
// the fixture syntax the downstream test suite already consumes, so it
// must not be "cleaned up".
func (v Vector) Render() string {
	parts := make([]string, len(v.Data))
	for i, b := range v.Data {
		parts[i] = fmt.Sprintf("%d", b)
	}
	return fmt.Sprintf("const %s : &[u8] = & [%s] ;", v.Name, strings.Join(parts, ", "))
}

// FromTelegram snapshots a telegram into a named vector.
func FromTelegram(name string, t *nxt.Telegram) Vector {
	return Vector{Name: name, Data: t.Bytes()}
}

// Write renders each vector as one line on w.
func Write(w io.Writer, vs []Vector) error {
	for _, v := range vs {
		if _, err := fmt.Fprintln(w, v.Render()); err != nil {
			return err
		}
	}
	return nil
}
