package request

import "strings"

// Kind is the closed set of operations the engine dispatches on.
type Kind int

const (
	Insert Kind = iota + 1
	Select
	Update
	Delete
	Template
)

var kindNames = map[Kind]string{
	Insert:   "insert",
	Select:   "select",
	Update:   "update",
	Delete:   "delete",
	Template: "template",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Verb is the upper-cased SQL verb for CRUD kinds and "" for templates.
func (k Kind) Verb() string {
	if k == Template || k.String() == "unknown" {
		return ""
	}
	return strings.ToUpper(k.String())
}

// ParseKind maps an operation name to its Kind, ignoring case.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == s {
			return k, true
		}
	}
	return 0, false
}

// ReturnMode selects between returning SQL text and executing it.
type ReturnMode int

const (
	QueryOnly ReturnMode = iota
	Execute
)

func (m ReturnMode) String() string {
	if m == Execute {
		return "execute"
	}
	return "query"
}
