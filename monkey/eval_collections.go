package monkey

func evalArrayLiteral(literal *ArrayLiteral, env *Env) Value {
	elements, errValue := evalExpressions(literal.Elements, env)
	if errValue != nil {
		return *errValue
	}
	return NewArray(elements)
}

func evalHashLiteral(literal *HashLiteral, env *Env) Value {
	pairs := make(map[HashKey]Value, len(literal.Pairs))

	for _, pair := range literal.Pairs {
		keyValue := Eval(pair.Key, env)
		if keyValue.IsError() {
			return keyValue
		}

		key, hashable := HashKeyOf(keyValue)
		if !hashable {
			return NewError("Unusable hash key: %s", keyValue.Kind())
		}

		value := Eval(pair.Value, env)
		if value.IsError() {
			return value
		}

		// Duplicate keys overwrite: last write wins.
		pairs[key] = value
	}

	return NewHash(pairs)
}

func evalIndexExpression(expr *IndexExpression, env *Env) Value {
	collection := Eval(expr.Collection, env)
	if collection.IsError() {
		return collection
	}
	index := Eval(expr.Index, env)
	if index.IsError() {
		return index
	}

	switch collection.Kind() {
	case KindArray:
		return evalArrayIndex(collection, index)
	case KindHash:
		return evalHashIndex(collection, index)
	default:
		return NewError("Index operator not supported: %s", collection.Kind())
	}
}

func evalArrayIndex(collection, index Value) Value {
	if index.Kind() != KindInteger {
		return NewError("Invalid index: %s", index.Kind())
	}

	elements := collection.Array()
	idx := index.Int()

	// Negative indices resolve from the end of the array.
	resolved := idx
	if resolved < 0 {
		resolved += int64(len(elements))
	}
	if resolved < 0 || resolved >= int64(len(elements)) {
		return NewError("Index access out of bounds. Index: %d. Array len: %d", idx, len(elements))
	}

	return elements[resolved]
}

func evalHashIndex(collection, index Value) Value {
	key, hashable := HashKeyOf(index)
	if !hashable {
		return NewError("Unusable hash key: %s", index.Kind())
	}

	value, ok := collection.Hash()[key]
	if !ok {
		// An absent key is NULL, not an error.
		return Null
	}
	return value
}
