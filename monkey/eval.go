package monkey

// Eval walks the AST and produces a runtime value. Evaluation errors are
// Error values propagated through the return channel: every step that can
// fail checks its sub-results and short-circuits, left operand before
// right, so the first error reaches the caller unchanged.
func Eval(node Node, env *Env) Value {
	switch n := node.(type) {
	case *Program:
		return evalProgram(n, env)
	case *ExpressionStatement:
		return Eval(n.Expr, env)
	case *BlockStatement:
		return evalBlockStatement(n, env)
	case *LetStatement:
		value := Eval(n.Value, env)
		if value.IsError() {
			return value
		}
		env.Define(n.Name.Name, value)
		return Null
	case *ReturnStatement:
		value := Eval(n.Value, env)
		if value.IsError() {
			return value
		}
		return NewReturn(value)
	case *IntegerLiteral:
		return NewInteger(n.Value)
	case *StringLiteral:
		return NewString(n.Value)
	case *BooleanLiteral:
		return NewBoolean(n.Value)
	case *PrefixExpression:
		return evalPrefixExpression(n, env)
	case *InfixExpression:
		return evalInfixExpression(n, env)
	case *IfExpression:
		return evalIfExpression(n, env)
	case *Identifier:
		return evalIdentifier(n, env)
	case *FunctionLiteral:
		return NewFunction(&Function{Parameters: n.Parameters, Body: n.Body, Env: env})
	case *CallExpression:
		return evalCallExpression(n, env)
	case *ArrayLiteral:
		return evalArrayLiteral(n, env)
	case *IndexExpression:
		return evalIndexExpression(n, env)
	case *HashLiteral:
		return evalHashLiteral(n, env)
	default:
		return Null
	}
}

// evalProgram threads the last statement value and additionally unwraps a
// top-level return signal, since a top-level return closes the program.
func evalProgram(program *Program, env *Env) Value {
	result := Null

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result.Kind() {
		case KindReturn:
			return result.ReturnValue()
		case KindError:
			return result
		}
	}

	return result
}

// evalBlockStatement propagates a return signal unopened so it can cross
// nested blocks up to the enclosing function call or program.
func evalBlockStatement(block *BlockStatement, env *Env) Value {
	result := Null

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		switch result.Kind() {
		case KindReturn, KindError:
			return result
		}
	}

	return result
}

func evalIfExpression(expr *IfExpression, env *Env) Value {
	condition := Eval(expr.Condition, env)
	if condition.IsError() {
		return condition
	}

	if condition.Truthy() {
		return Eval(expr.Consequence, env)
	}
	if expr.Alternative != nil {
		return Eval(expr.Alternative, env)
	}
	return Null
}

func evalIdentifier(ident *Identifier, env *Env) Value {
	if val, ok := env.Get(ident.Name); ok {
		return val
	}
	if builtin, ok := lookupBuiltin(ident.Name); ok {
		return builtin
	}
	return NewError("Identifier not found: %s", ident.Name)
}

func evalCallExpression(call *CallExpression, env *Env) Value {
	callee := Eval(call.Callee, env)
	if callee.IsError() {
		return callee
	}

	args, errValue := evalExpressions(call.Arguments, env)
	if errValue != nil {
		return *errValue
	}

	return applyCallable(callee, args)
}

// evalExpressions evaluates left to right, short-circuiting on the first
// error, which is returned separately from the partial results.
func evalExpressions(exprs []Expression, env *Env) ([]Value, *Value) {
	results := make([]Value, 0, len(exprs))

	for _, expr := range exprs {
		val := Eval(expr, env)
		if val.IsError() {
			return nil, &val
		}
		results = append(results, val)
	}

	return results, nil
}

func applyCallable(callee Value, args []Value) Value {
	switch callee.Kind() {
	case KindFunction:
		fn := callee.Fn()
		callEnv := NewEnclosedEnv(fn.Env)
		for i, param := range fn.Parameters {
			if i < len(args) {
				callEnv.Define(param.Name, args[i])
			}
		}
		result := Eval(fn.Body, callEnv)
		if result.Kind() == KindReturn {
			return result.ReturnValue()
		}
		return result
	case KindBuiltin:
		return callee.Builtin().Fn(args)
	default:
		return NewError("Not a function: %s", callee.String())
	}
}
