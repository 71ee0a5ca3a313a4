package request

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/result"
)

// Request is implemented by every typed operation request.
type Request interface {
	Kind() Kind
	ReturnMode() ReturnMode
	Validate() error
}

// Absent reports whether r is nil, including a nil pointer of one of the
// request types stored in the interface.
func Absent(r Request) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *InsertRequest:
		return v == nil
	case *SelectRequest:
		return v == nil
	case *UpdateRequest:
		return v == nil
	case *DeleteRequest:
		return v == nil
	case *TemplateRequest:
		return v == nil
	}
	return false
}

// InsertRequest describes INSERT INTO table (cols) VALUES (vals).
type InsertRequest struct {
	Table   string
	Columns Columns
	Mode    ReturnMode
}

// SelectRequest describes SELECT cols FROM table condition.
type SelectRequest struct {
	Table     string
	Columns   []string
	Condition string
	Mode      ReturnMode
}

// UpdateRequest describes UPDATE table SET assignments [WHERE condition].
type UpdateRequest struct {
	Table     string
	Columns   Columns
	Condition string
	Mode      ReturnMode
}

// DeleteRequest describes DELETE FROM table [condition].
type DeleteRequest struct {
	Table     string
	Condition string
	Mode      ReturnMode
}

// TemplateRequest carries a raw SQL template with {name} tokens. Verb routes
// execution classification.
type TemplateRequest struct {
	Verb     string
	Template string
	Params   Columns
	Mode     ReturnMode
}

func (r *InsertRequest) Kind() Kind   { return Insert }
func (r *SelectRequest) Kind() Kind   { return Select }
func (r *UpdateRequest) Kind() Kind   { return Update }
func (r *DeleteRequest) Kind() Kind   { return Delete }
func (r *TemplateRequest) Kind() Kind { return Template }

func (r *InsertRequest) ReturnMode() ReturnMode   { return r.Mode }
func (r *SelectRequest) ReturnMode() ReturnMode   { return r.Mode }
func (r *UpdateRequest) ReturnMode() ReturnMode   { return r.Mode }
func (r *DeleteRequest) ReturnMode() ReturnMode   { return r.Mode }
func (r *TemplateRequest) ReturnMode() ReturnMode { return r.Mode }

func (r *InsertRequest) Validate() error {
	if Blank(r.Table) {
		return result.MissingField("table")
	}
	return validateColumns(r.Columns)
}

func (r *SelectRequest) Validate() error {
	if Blank(r.Table) {
		return result.MissingField("table")
	}
	if len(r.Columns) == 0 {
		return result.MissingField("columns")
	}
	for _, c := range r.Columns {
		if Blank(c) {
			return result.MissingField("column name")
		}
	}
	return nil
}

func (r *UpdateRequest) Validate() error {
	if Blank(r.Table) {
		return result.MissingField("table")
	}
	return validateColumns(r.Columns)
}

func (r *DeleteRequest) Validate() error {
	if Blank(r.Table) {
		return result.MissingField("table")
	}
	return nil
}

func (r *TemplateRequest) Validate() error {
	if Blank(r.Template) {
		return result.MissingField("template")
	}
	if r.Params.Len() == 0 {
		return result.MissingField("params")
	}
	if Blank(r.Verb) {
		return result.MissingField("verb")
	}
	return nil
}

func validateColumns(c Columns) error {
	if c.Len() == 0 {
		return result.MissingField("columns")
	}
	for _, it := range c.items {
		if Blank(it.Name) {
			return result.MissingField("column name")
		}
	}
	return nil
}

// Blank reports whether s is empty or whitespace only.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
