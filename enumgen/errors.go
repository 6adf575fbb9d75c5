package enumgen

import "fmt"

type ErrorUnterminatedComment struct {
	Line int
}

func (e ErrorUnterminatedComment) Error() string {
	return fmt.Sprintf("line %d: documentation comment is never closed", e.Line)
}

type ErrorUnterminatedEnum struct {
	Name string
	Line int
}

func (e ErrorUnterminatedEnum) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("line %d: enum declaration is never closed", e.Line)
	}
	return fmt.Sprintf("line %d: enum %s is never closed", e.Line, e.Name)
}

type ErrorBadMember struct {
	Line int
	Text string
}

func (e ErrorBadMember) Error() string {
	return fmt.Sprintf("line %d: cannot parse enumerator %q", e.Line, e.Text)
}
