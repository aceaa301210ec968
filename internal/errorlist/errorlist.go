// Bounded aggregation of independent errors.
package errorlist

import "fmt"

var maxErrors = 8

type List struct {
	errors  []error
	message string
}

func New(message string) *List {
	return &List{message: message}
}

func (list List) Error() string {
	switch len(list.errors) {
	case 0:
		return list.message
	case 1:
		return fmt.Sprintf("%s: %s", list.message, list.errors[0])
	default:
		return fmt.Sprintf("%s: %s (and %d more)", list.message, list.errors[0], len(list.errors)-1)
	}
}

func (list List) Unwrap() []error {
	return list.errors
}

// Append a single error to the list.
//
// Nil errors are ignored. Returns false when list is full, caller should
// stop checking and report the list.
func (list *List) Append(err error) bool {
	if err != nil {
		list.errors = append(list.errors, err)
	}
	return list.Len() < maxErrors
}

func (list List) Len() int {
	return len(list.errors)
}
