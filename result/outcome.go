package result

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is the sign of an execution outcome.
type Status string

const (
	StatusDone  Status = "DONE"
	StatusFail  Status = "FAIL"
	StatusError Status = "ERROR"
)

// Outcome is the structured result of executing a statement.
type Outcome struct {
	Status          Status `json:"sign"`
	ExecutedCommand string `json:"executed_cmd"`
	AffectedRows    int64  `json:"effected_row"`
	Message         string `json:"message"`
	Rows            []Row  `json:"query_data,omitempty"`
}

// MarshalJSON keeps an empty result set as [] while mutating outcomes, which
// carry no rows, omit query_data entirely.
func (o Outcome) MarshalJSON() ([]byte, error) {
	type alias Outcome
	out := struct {
		alias
		Rows *[]Row `json:"query_data,omitempty"`
	}{alias: alias(o)}
	if o.Rows != nil {
		out.Rows = &o.Rows
	}
	return json.Marshal(out)
}

// Row is one result record. Columns keep the order reported by the driver.
type Row struct {
	Columns []string
	Values  []any
}

// Get returns the value of a column and whether it exists.
func (r Row) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON writes the row as an object whose keys follow column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		var v any
		if i < len(r.Values) {
			v = r.Values[i]
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c, err)
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Done builds a successful mutating outcome.
func Done(verb string, affected int64) *Outcome {
	return &Outcome{
		Status:          StatusDone,
		ExecutedCommand: verb,
		AffectedRows:    affected,
		Message:         fmt.Sprintf("[%s] Command is executed Number of rows affected is [%d]", verb, affected),
	}
}

// Selected builds a successful read outcome. rows is never reported as nil.
func Selected(verb string, rows []Row) *Outcome {
	if rows == nil {
		rows = []Row{}
	}
	return &Outcome{
		Status:          StatusDone,
		ExecutedCommand: verb,
		AffectedRows:    int64(len(rows)),
		Message:         fmt.Sprintf("[%s] Command is executed Number of rows selected is [%d]", verb, len(rows)),
		Rows:            rows,
	}
}

// Fail builds the outcome for a verb the adapter does not recognize.
func Fail(verb string) *Outcome {
	return &Outcome{
		Status:          StatusFail,
		ExecutedCommand: verb,
		Message:         fmt.Sprintf("[%s] Unknown CRUD Command is given", verb),
	}
}

// Errored builds the outcome for a database fault. The native error text is
// always carried in the message.
func Errored(verb string, err error) *Outcome {
	msg := "unknown execution error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Outcome{
		Status:          StatusError,
		ExecutedCommand: verb,
		Message:         msg,
	}
}
