/*
Package inequality provides predicates that decision nodes can
evaluate against a set of named inputs, either parsed from an
inequality expression such as "x[0] < 11" or wrapping a Go
function.
*/
package inequality

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Input holds the named values a predicate is evaluated against.
A value can be a numeric or string scalar, or a slice of those
for predicates that index into it.
*/
type Input map[string]interface{}

/*
Predicate represents a boolean condition on an Input.

Its Evaluate method takes a context and an Input and returns a boolean
indicating if the input satisfies the predicate.

Its String method returns the source expression the predicate was
parsed from, or an empty string for predicates that have no textual
representation.
*/
type Predicate interface {
	Evaluate(ctx context.Context, in Input) (bool, error)
	String() string
}

/*
PredicateError represents an error related with parsing or
evaluating predicates
*/
type PredicateError string

/*
ErrPredicate is the error all predicate parse and evaluation
failures wrap, so that callers can tell them apart from other
errors.
*/
const ErrPredicate = PredicateError("predicate error")

func (pe PredicateError) Error() string {
	return string(pe)
}

/*
Func is a Predicate wrapping a Go function. It has no textual
representation, so nodes using it cannot be serialized.
*/
type Func func(in Input) bool

/*
Evaluate invokes the wrapped function with the given input.
*/
func (f Func) Evaluate(ctx context.Context, in Input) (bool, error) {
	if f == nil {
		return false, fmt.Errorf("%w: nil predicate function", ErrPredicate)
	}
	return f(in), nil
}

func (f Func) String() string {
	return ""
}

/*
Inequality is a Predicate parsed from an expression of the form
"OPERAND OP OPERAND", with OP one of <, <=, ==, != , >= and >.
An operand can be a number, a bare string, the name of an input
value or the name of an input value indexed with an integer, as
in "x[1]".
*/
type Inequality struct {
	source      string
	left, right operand
	op          string
}

type operand struct {
	raw     string
	name    string
	index   int
	indexed bool
	num     float64
	isNum   bool
}

var indexedOperandRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\[([0-9]+)\]$`)
var nameOperandRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

/*
Parse takes an inequality expression and returns an Inequality
predicate for it or an error if the expression does not split
into exactly an operand, a known operator and another operand.
*/
func Parse(expr string) (*Inequality, error) {
	parts := strings.Fields(expr)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: splitting %q resulted in %d parts instead of 3", ErrPredicate, expr, len(parts))
	}
	switch parts[1] {
	case "<", "<=", "==", "!=", ">=", ">":
	default:
		return nil, fmt.Errorf("%w: unknown operator %q in %q", ErrPredicate, parts[1], expr)
	}
	left, err := parseOperand(parts[0])
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", expr, err)
	}
	right, err := parseOperand(parts[2])
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", expr, err)
	}
	return &Inequality{source: expr, left: left, op: parts[1], right: right}, nil
}

func parseOperand(token string) (operand, error) {
	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return operand{raw: token, num: n, isNum: true}, nil
	}
	if m := indexedOperandRe.FindStringSubmatch(token); m != nil {
		i, err := strconv.Atoi(m[2])
		if err != nil {
			return operand{}, fmt.Errorf("%w: invalid index in operand %q", ErrPredicate, token)
		}
		return operand{raw: token, name: m[1], index: i, indexed: true}, nil
	}
	if nameOperandRe.MatchString(token) {
		return operand{raw: token, name: token}, nil
	}
	return operand{raw: token}, nil
}

/*
Evaluate resolves both operands against the given input and
compares them. Operands naming an input value take that value,
indexing into it if the operand is indexed; all other operands
are literals. Numbers compare numerically and strings
lexicographically; comparing a number with a string is an error,
as are missing input values and out-of-range indices.
*/
func (ineq *Inequality) Evaluate(ctx context.Context, in Input) (bool, error) {
	left, err := ineq.left.resolve(in)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", ineq.source, err)
	}
	right, err := ineq.right.resolve(in)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", ineq.source, err)
	}
	result, err := compare(ineq.op, left, right)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", ineq.source, err)
	}
	return result, nil
}

/*
String returns the expression the predicate was parsed from.
*/
func (ineq *Inequality) String() string {
	return ineq.source
}

func (o operand) resolve(in Input) (interface{}, error) {
	if o.isNum {
		return o.num, nil
	}
	if o.indexed {
		v, ok := in[o.name]
		if !ok {
			return nil, fmt.Errorf("%w: no input value named %q", ErrPredicate, o.name)
		}
		return elementAt(o.name, v, o.index)
	}
	if o.name != "" {
		if v, ok := in[o.name]; ok {
			return coerce(o.name, v)
		}
	}
	// a bare token not naming an input value is a string literal
	return o.raw, nil
}

func elementAt(name string, v interface{}, i int) (interface{}, error) {
	switch vs := v.(type) {
	case []float64:
		if i >= len(vs) {
			return nil, fmt.Errorf("%w: index %d out of range for input %q of length %d", ErrPredicate, i, name, len(vs))
		}
		return vs[i], nil
	case []int:
		if i >= len(vs) {
			return nil, fmt.Errorf("%w: index %d out of range for input %q of length %d", ErrPredicate, i, name, len(vs))
		}
		return float64(vs[i]), nil
	case []string:
		if i >= len(vs) {
			return nil, fmt.Errorf("%w: index %d out of range for input %q of length %d", ErrPredicate, i, name, len(vs))
		}
		return coerce(name, vs[i])
	case []interface{}:
		if i >= len(vs) {
			return nil, fmt.Errorf("%w: index %d out of range for input %q of length %d", ErrPredicate, i, name, len(vs))
		}
		return coerce(name, vs[i])
	}
	return nil, fmt.Errorf("%w: input %q of type %T cannot be indexed", ErrPredicate, name, v)
}

func coerce(name string, v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n, nil
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: input %q has unsupported type %T", ErrPredicate, name, v)
}

func compare(op string, left, right interface{}) (bool, error) {
	lf, lok := left.(float64)
	rf, rok := right.(float64)
	if lok && rok {
		return compareFloats(op, lf, rf), nil
	}
	ls, lok := left.(string)
	rs, rok := right.(string)
	if lok && rok {
		return compareStrings(op, ls, rs), nil
	}
	return false, fmt.Errorf("%w: cannot compare %T with %T", ErrPredicate, left, right)
}

func compareFloats(op string, a, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case "==":
		return a == b
	case "!=":
		return a != b
	case ">=":
		return a >= b
	}
	return a > b
}

func compareStrings(op string, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case "==":
		return a == b
	case "!=":
		return a != b
	case ">=":
		return a >= b
	}
	return a > b
}
