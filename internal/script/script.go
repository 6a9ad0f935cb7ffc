// Package script parses and runs line oriented scripts of treap operations.
//
// Each non-blank line not starting with # holds one operation:
//
//	add <key> [priority]   (also: insert)
//	del <key>              (also: delete, remove)
//	find <key>             (also: contains)
//	print
//
// Keys and priorities are decimal integers.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/treap/Queues"
)

// Kind of an operation.
type Kind uint8

const (
	Add Kind = iota + 1
	Delete
	Find
	Print
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Delete:
		return "delete"
	case Find:
		return "find"
	case Print:
		return "print"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var verbs = map[string]Kind{
	"add":      Add,
	"insert":   Add,
	"del":      Delete,
	"delete":   Delete,
	"remove":   Delete,
	"find":     Find,
	"contains": Find,
	"print":    Print,
}

// Op is one parsed line.
type Op struct {
	Kind        Kind
	Key         int
	Priority    int
	HasPriority bool
	Line        int
}

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrArgs      = errors.New("wrong number of arguments")
)

// SyntaxError reports the first line Parse could not understand.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func parseLine(fields []string) (Op, error) {
	k, ok := verbs[strings.ToLower(fields[0])]
	if !ok {
		return Op{}, fmt.Errorf("%w %q", ErrUnknownOp, fields[0])
	}
	op := Op{Kind: k}
	args := fields[1:]
	switch {
	case k == Print && len(args) != 0,
		k == Add && (len(args) < 1 || len(args) > 2),
		(k == Delete || k == Find) && len(args) != 1:
		return Op{}, fmt.Errorf("%w for %s: %d", ErrArgs, k, len(args))
	}
	if k == Print {
		return op, nil
	}
	var err error
	if op.Key, err = strconv.Atoi(args[0]); err != nil {
		return Op{}, fmt.Errorf("key: %w", err)
	}
	if len(args) == 2 {
		if op.Priority, err = strconv.Atoi(args[1]); err != nil {
			return Op{}, fmt.Errorf("priority: %w", err)
		}
		op.HasPriority = true
	}
	return op, nil
}

// Parse reads a whole script into a queue of operations in file order.
// The error is a *SyntaxError for malformed lines.
func Parse(r io.Reader) (*Queues.ArrayQueue[Op], error) {
	q := Queues.MakeArrayQueue[Op](16)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseLine(strings.Fields(text))
		if err != nil {
			return nil, &SyntaxError{n, text, err}
		}
		op.Line = n
		q.Push(op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return q, nil
}

// DemoScript exercises insertion with fixed priorities, deletion of leaves,
// single child and root nodes, and lookups of present and absent keys.
const DemoScript = `# build
add 4 19
add 2 31
add 6 70
add 1 84
add 3 12
add 5 83
add 7 26
print

del 1
find 6
del 6
print
find 2
del 4
print
del 7
del 3
print

# rebuild, 5 is a duplicate
add 7 26
add 6 77
add 10 87
add 5 93
find 7
find 6
find 10
find 45
print
`
