package monkey

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsError() bool { return v.kind == KindError }

func (v Value) Bool() bool {
	if v.kind == KindBoolean {
		return v.data.(bool)
	}
	return false
}

func (v Value) Int() int64 {
	if v.kind == KindInteger {
		return v.data.(int64)
	}
	return 0
}

func (v Value) Str() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return ""
}

func (v Value) Array() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.data.([]Value)
}

func (v Value) Hash() map[HashKey]Value {
	if v.kind != KindHash {
		return nil
	}
	return v.data.(map[HashKey]Value)
}

func (v Value) Fn() *Function {
	if v.kind != KindFunction {
		return nil
	}
	return v.data.(*Function)
}

func (v Value) Builtin() *Builtin {
	if v.kind != KindBuiltin {
		return nil
	}
	return v.data.(*Builtin)
}

func (v Value) ReturnValue() Value {
	if v.kind != KindReturn {
		return Null
	}
	return v.data.(Value)
}

func (v Value) ErrMessage() string {
	if v.kind != KindError {
		return ""
	}
	return v.data.(string)
}

// Truthy applies the language's truthiness rule: only false and NULL are
// falsy; everything else, including 0 and "", is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean:
		return v.Bool()
	default:
		return true
	}
}
