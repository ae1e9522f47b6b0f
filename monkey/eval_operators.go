package monkey

func evalPrefixExpression(expr *PrefixExpression, env *Env) Value {
	right := Eval(expr.Right, env)
	if right.IsError() {
		return right
	}

	switch expr.Operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		if right.Kind() != KindInteger {
			return NewError("Unknown operator: -%s", right.Kind())
		}
		return NewInteger(-right.Int())
	default:
		return NewError("Unknown operator: %s%s", expr.Operator, right.Kind())
	}
}

// evalBangOperator negates by truthiness: only false and NULL negate to
// true, everything else (including 0) negates to false.
func evalBangOperator(operand Value) Value {
	switch operand {
	case False, Null:
		return True
	default:
		return False
	}
}

func evalInfixExpression(expr *InfixExpression, env *Env) Value {
	left := Eval(expr.Left, env)
	if left.IsError() {
		return left
	}
	right := Eval(expr.Right, env)
	if right.IsError() {
		return right
	}

	switch {
	case left.Kind() != right.Kind():
		return NewError("Unexpected type on operation: %s %s %s", left.Kind(), expr.Operator, right.Kind())
	case left.Kind() == KindInteger:
		return evalIntegerInfix(expr.Operator, left, right)
	case left.Kind() == KindString:
		return evalStringInfix(expr.Operator, left, right)
	case left.Kind() == KindBoolean || left.Kind() == KindNull:
		// Singleton comparison: booleans and NULL are canonical values.
		switch expr.Operator {
		case "==":
			return NewBoolean(left == right)
		case "!=":
			return NewBoolean(left != right)
		default:
			return NewError("Unknown operator: %s %s %s", left.Kind(), expr.Operator, right.Kind())
		}
	default:
		return NewError("Unknown operator: %s %s %s", left.Kind(), expr.Operator, right.Kind())
	}
}

func evalIntegerInfix(operator string, left, right Value) Value {
	l, r := left.Int(), right.Int()

	switch operator {
	case "+":
		return NewInteger(l + r)
	case "-":
		return NewInteger(l - r)
	case "*":
		return NewInteger(l * r)
	case "/":
		if r == 0 {
			return NewError("Division by zero")
		}
		return NewInteger(floorDiv(l, r))
	case "<":
		return NewBoolean(l < r)
	case ">":
		return NewBoolean(l > r)
	case "==":
		return NewBoolean(l == r)
	case "!=":
		return NewBoolean(l != r)
	default:
		return NewError("Unknown operator: %s %s %s", left.Kind(), operator, right.Kind())
	}
}

// floorDiv truncates toward negative infinity, unlike Go's / which
// truncates toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func evalStringInfix(operator string, left, right Value) Value {
	if operator != "+" {
		return NewError("Unknown operator: %s %s %s", left.Kind(), operator, right.Kind())
	}
	return NewString(left.Str() + right.Str())
}
