// Package output prints the result of a lookup, either as bare URLs or as a JSON document.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/stream"
	"github.com/invopop/jsonschema"
)

// Output is the JSON document written by --json.
type Output struct {
	RoomID  live.RoomID         `json:"room_id" jsonschema:"description=Numeric id of the live room."`
	Quality live.Quality        `json:"quality" jsonschema:"type=string,enum=low,enum=high,description=Requested quality tier."`
	Format  live.Format         `json:"format" jsonschema:"type=string,enum=m3u8,enum=flv,description=Requested container format."`
	Streams []*stream.Candidate `json:"streams" jsonschema:"description=Matching stream urls in response order."`
}

// New assembles the document for candidates that already passed the format filter.
func New(room live.RoomID, q live.Quality, f live.Format, candidates []*stream.Candidate) *Output {
	if candidates == nil {
		candidates = make([]*stream.Candidate, 0)
	}

	return &Output{
		RoomID:  room,
		Quality: q,
		Format:  f,
		Streams: candidates,
	}
}

// Write prints o to w. Plain mode writes one URL per line and nothing at all for an empty result.
func Write(w io.Writer, o *Output, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		return encoder.Encode(o)
	}

	var b strings.Builder
	for _, c := range o.Streams {
		b.WriteString(strings.Trim(c.URL, `"`))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Schema describes the JSON document written by Write.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return fmt.Sprintf("%s.%s", t.PkgPath()[strings.LastIndex(t.PkgPath(), "/")+1:], t.Name())
	}

	return reflector.Reflect(&Output{})
}
