// internal/status/parse.go
package status

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload means the buffer is not a valid JSON document.
var ErrMalformedPayload = errors.New("status: malformed payload")

// ErrMissingPresence means the document is valid JSON but carries no
// players object. The cycle treats this the same as a fetch failure
// rather than as "zero entities online".
var ErrMissingPresence = errors.New("status: payload has no players field")

// Wire shape. Only the fields we consume; everything else is ignored.
type payload struct {
	Players *players `json:"players"`
}

type players struct {
	Online int      `json:"online"`
	Sample []sample `json:"sample"`
}

type sample struct {
	Name string `json:"name"`
}

// Parse deserializes an extracted status object into a Record.
//
// An absent or empty sample array is valid: the server does not promise
// an exhaustive list, so Names may be shorter than OnlineCount.
func Parse(buf []byte) (Record, error) {
	var p payload
	if err := json.Unmarshal(buf, &p); err != nil {
		return Failure(), fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if p.Players == nil {
		return Failure(), ErrMissingPresence
	}

	rec := Record{OnlineCount: p.Players.Online}
	for _, s := range p.Players.Sample {
		rec.Names = append(rec.Names, s.Name)
	}

	return rec, nil
}
