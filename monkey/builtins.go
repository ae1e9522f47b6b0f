package monkey

// The builtin table is fixed and closed: programs cannot define or shadow
// natives into it, and identifiers resolve against the environment first.
var builtins = map[string]Value{
	"len":     NewBuiltin("len", builtinLen),
	"head":    NewBuiltin("head", builtinHead),
	"last":    NewBuiltin("last", builtinLast),
	"tail":    NewBuiltin("tail", builtinTail),
	"init":    NewBuiltin("init", builtinInit),
	"push":    NewBuiltin("push", builtinPush),
	"prepend": NewBuiltin("prepend", builtinPrepend),
}

func lookupBuiltin(name string) (Value, bool) {
	builtin, ok := builtins[name]
	return builtin, ok
}

// BuiltinNames lists the builtin table, for front-end completion.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}

func arityError(name string, expected, got int) Value {
	return NewError("Wrong number of arguments to %s. Expected: %d. Got: %d", name, expected, got)
}

func builtinLen(args []Value) Value {
	if len(args) != 1 {
		return arityError("len", 1, len(args))
	}
	switch args[0].Kind() {
	case KindString:
		return NewInteger(int64(len(args[0].Str())))
	case KindArray:
		return NewInteger(int64(len(args[0].Array())))
	default:
		return NewError("Unsupported argument to len: %s", args[0].Kind())
	}
}

func builtinHead(args []Value) Value {
	elements, errValue := arrayArg("head", args)
	if errValue != nil {
		return *errValue
	}
	if len(elements) == 0 {
		return Null
	}
	return elements[0]
}

func builtinLast(args []Value) Value {
	elements, errValue := arrayArg("last", args)
	if errValue != nil {
		return *errValue
	}
	if len(elements) == 0 {
		return Null
	}
	return elements[len(elements)-1]
}

func builtinTail(args []Value) Value {
	elements, errValue := arrayArg("tail", args)
	if errValue != nil {
		return *errValue
	}
	if len(elements) == 0 {
		return Null
	}
	out := make([]Value, len(elements)-1)
	copy(out, elements[1:])
	return NewArray(out)
}

func builtinInit(args []Value) Value {
	elements, errValue := arrayArg("init", args)
	if errValue != nil {
		return *errValue
	}
	if len(elements) == 0 {
		return Null
	}
	out := make([]Value, len(elements)-1)
	copy(out, elements[:len(elements)-1])
	return NewArray(out)
}

// builtinPush returns a new array with the element appended; the source
// array is never mutated.
func builtinPush(args []Value) Value {
	if len(args) != 2 {
		return arityError("push", 2, len(args))
	}
	if args[0].Kind() != KindArray {
		return NewError("Unsupported argument to push: %s", args[0].Kind())
	}
	elements := args[0].Array()
	out := make([]Value, len(elements)+1)
	copy(out, elements)
	out[len(elements)] = args[1]
	return NewArray(out)
}

func builtinPrepend(args []Value) Value {
	if len(args) != 2 {
		return arityError("prepend", 2, len(args))
	}
	if args[0].Kind() != KindArray {
		return NewError("Unsupported argument to prepend: %s", args[0].Kind())
	}
	elements := args[0].Array()
	out := make([]Value, len(elements)+1)
	out[0] = args[1]
	copy(out[1:], elements)
	return NewArray(out)
}

func arrayArg(name string, args []Value) ([]Value, *Value) {
	if len(args) != 1 {
		errValue := arityError(name, 1, len(args))
		return nil, &errValue
	}
	if args[0].Kind() != KindArray {
		errValue := NewError("Unsupported argument to %s: %s", name, args[0].Kind())
		return nil, &errValue
	}
	return args[0].Array(), nil
}
