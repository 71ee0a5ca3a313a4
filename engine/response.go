package engine

import (
	"encoding/json"

	"github.com/Konsultn-Engineering/smartcrud/result"
)

// Response is what every public entry point returns. Exactly one of Query,
// Outcome or Error is meaningful.
type Response struct {
	CallID  string
	Query   string
	Outcome *result.Outcome
	Error   *result.ErrorResponse
}

func queryResponse(id, sql string) Response {
	return Response{CallID: id, Query: sql}
}

func outcomeResponse(id string, o *result.Outcome) Response {
	return Response{CallID: id, Outcome: o}
}

func errorResponse(id string, err error) Response {
	return Response{CallID: id, Error: result.FromError(err)}
}

// Failed reports whether the call produced an error response or a non-DONE
// outcome.
func (r Response) Failed() bool {
	if r.Error != nil {
		return true
	}
	return r.Outcome != nil && r.Outcome.Status != result.StatusDone
}

// MarshalJSON writes the single populated shape. CallID is not part of the
// wire format.
func (r Response) MarshalJSON() ([]byte, error) {
	switch {
	case r.Error != nil:
		return json.Marshal(r.Error)
	case r.Outcome != nil:
		return json.Marshal(r.Outcome)
	default:
		return json.Marshal(struct {
			Query string `json:"query"`
		}{r.Query})
	}
}
