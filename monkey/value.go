package monkey

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind tags the closed set of runtime value variants.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBoolean
	KindInteger
	KindString
	KindArray
	KindHash
	KindFunction
	KindBuiltin
	KindReturn
	KindError
)

// String returns the kind name as it appears in runtime error messages.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindBoolean:
		return "BOOLEAN"
	case KindInteger:
		return "INTEGER"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	case KindHash:
		return "HASH"
	case KindFunction:
		return "FUNCTION"
	case KindBuiltin:
		return "BUILTIN"
	case KindReturn:
		return "RETURN"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Value is the tagged union of Monkey runtime values. Evaluation errors are
// ordinary values of KindError flowing through the same channel as results;
// they are never Go errors.
type Value struct {
	kind ValueKind
	data any
}

// Function is a user-defined function value: parameters, body, and the
// environment captured at the definition site (the closure).
type Function struct {
	Parameters []*Identifier
	Body       *BlockStatement
	Env        *Env
}

// Builtin is a native function exposed to evaluated programs.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// BuiltinFunc receives already-evaluated arguments and reports violations
// as Error values, never as panics or Go errors.
type BuiltinFunc func(args []Value) Value

// HashKey is the comparable identity of a hashable value. Only integers,
// strings, and booleans are hashable.
type HashKey struct {
	kind ValueKind
	ival int64
	sval string
	bval bool
}

// Value reconstructs the runtime value this key was derived from.
func (k HashKey) Value() Value {
	switch k.kind {
	case KindInteger:
		return NewInteger(k.ival)
	case KindString:
		return NewString(k.sval)
	case KindBoolean:
		return NewBoolean(k.bval)
	default:
		return Null
	}
}

// Canonical singletons. There is exactly one NULL and one of each boolean.
var (
	Null  = Value{kind: KindNull}
	True  = Value{kind: KindBoolean, data: true}
	False = Value{kind: KindBoolean, data: false}
)

func NewInteger(v int64) Value { return Value{kind: KindInteger, data: v} }

func NewString(v string) Value { return Value{kind: KindString, data: v} }

func NewBoolean(v bool) Value {
	if v {
		return True
	}
	return False
}

func NewArray(elements []Value) Value { return Value{kind: KindArray, data: elements} }

func NewHash(pairs map[HashKey]Value) Value { return Value{kind: KindHash, data: pairs} }

func NewFunction(fn *Function) Value { return Value{kind: KindFunction, data: fn} }

func NewBuiltin(name string, fn BuiltinFunc) Value {
	return Value{kind: KindBuiltin, data: &Builtin{Name: name, Fn: fn}}
}

// NewReturn wraps a value in the internal return signal. The wrapper never
// escapes evaluation of a program or function body.
func NewReturn(v Value) Value { return Value{kind: KindReturn, data: v} }

func NewError(format string, args ...any) Value {
	return Value{kind: KindError, data: fmt.Sprintf(format, args...)}
}

// HashKeyOf derives the hash key for a value. The second return is false
// for unhashable kinds.
func HashKeyOf(v Value) (HashKey, bool) {
	switch v.kind {
	case KindInteger:
		return HashKey{kind: KindInteger, ival: v.Int()}, true
	case KindString:
		return HashKey{kind: KindString, sval: v.Str()}, true
	case KindBoolean:
		return HashKey{kind: KindBoolean, bval: v.Bool()}, true
	default:
		return HashKey{}, false
	}
}

// String renders the canonical form shown by the REPL.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBoolean:
		return strconv.FormatBool(v.Bool())
	case KindInteger:
		return strconv.FormatInt(v.Int(), 10)
	case KindString:
		return v.Str()
	case KindArray:
		elements := v.Array()
		parts := make([]string, len(elements))
		for i, el := range elements {
			parts[i] = el.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindHash:
		pairs := v.Hash()
		parts := make([]string, 0, len(pairs))
		for key, val := range pairs {
			parts = append(parts, key.Value().String()+" = "+val.String())
		}
		sort.Strings(parts)
		if len(parts) == 0 {
			return "{ }"
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case KindFunction:
		fn := v.Fn()
		params := make([]string, len(fn.Parameters))
		for i, p := range fn.Parameters {
			params[i] = p.String()
		}
		return "fn (" + strings.Join(params, ", ") + ") " + fn.Body.String()
	case KindBuiltin:
		return "builtin function " + v.Builtin().Name
	case KindReturn:
		return v.ReturnValue().String()
	case KindError:
		return "ERROR: " + v.ErrMessage()
	default:
		return ""
	}
}
