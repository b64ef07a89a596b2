package evaluator

import (
	"fmt"
	"io"

	"github.com/RZakaria1/LDI-Interpreter/ast"
	"github.com/RZakaria1/LDI-Interpreter/object"
)

// NameError reports a reference to a variable that was never assigned.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name error: undefined variable '%s'", e.Name)
}

// TypeError reports an operator applied to operand types it does not
// support. Left is empty for prefix operators.
type TypeError struct {
	Operator string
	Left     object.ObjectType
	Right    object.ObjectType
}

func (e *TypeError) Error() string {
	if e.Left == "" {
		return fmt.Sprintf("type error: unsupported operand for '%s': %s", e.Operator, e.Right)
	}
	return fmt.Sprintf("type error: unsupported operands for '%s': %s and %s",
		e.Operator, e.Left, e.Right)
}

// Evaluator walks statements against an environment. Output of print
// statements goes to the writer given to New.
type Evaluator struct {
	out io.Writer
}

func New(out io.Writer) *Evaluator {
	return &Evaluator{out: out}
}

// Eval evaluates node in env. Statements other than expression statements
// yield object.NULL. Bindings made before a failure are kept.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) (object.Object, error) {
	switch node := node.(type) {

	// Statements
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.AssignStatement:
		val, err := e.Eval(node.Value, env)
		if err != nil {
			return nil, err
		}
		env.Set(node.Name.Value, val)
		return object.NULL, nil

	case *ast.PrintStatement:
		val, err := e.Eval(node.Value, env)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(e.out, val.Inspect()+"\n"); err != nil {
			return nil, err
		}
		return object.NULL, nil

	// Expressions
	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}, nil

	case *ast.BooleanLiteral:
		return object.NativeBoolToBooleanObject(node.Value), nil

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}, nil

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		// both sides are always evaluated, left first, also for and/or
		left, err := e.Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return evalInfixExpression(node.Operator, left, right)
	}

	// ast.Node is sealed; every variant is handled above.
	panic(fmt.Sprintf("evaluator: unhandled node %T", node))
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) (object.Object, error) {
	val, ok := env.Get(node.Value)
	if !ok {
		return nil, &NameError{Name: node.Value}
	}
	return val, nil
}

func evalPrefixExpression(operator string, right object.Object) (object.Object, error) {
	switch operator {
	case "not":
		return object.NativeBoolToBooleanObject(!object.IsTruthy(right)), nil
	case "-":
		num, ok := right.(*object.Number)
		if !ok {
			return nil, &TypeError{Operator: operator, Right: right.Type()}
		}
		return &object.Number{Value: -num.Value}, nil
	default:
		return nil, &TypeError{Operator: operator, Right: right.Type()}
	}
}

func evalInfixExpression(operator string, left, right object.Object) (object.Object, error) {
	switch operator {
	case "and":
		if !object.IsTruthy(left) {
			return left, nil
		}
		return right, nil
	case "or":
		if object.IsTruthy(left) {
			return left, nil
		}
		return right, nil
	case "==":
		return object.NativeBoolToBooleanObject(objectsEqual(left, right)), nil
	case "!=":
		return object.NativeBoolToBooleanObject(!objectsEqual(left, right)), nil
	}

	if operator == "+" && (left.Type() == object.STRING_OBJ || right.Type() == object.STRING_OBJ) {
		return &object.String{Value: left.Inspect() + right.Inspect()}, nil
	}

	switch {
	case left.Type() == object.NUMBER_OBJ && right.Type() == object.NUMBER_OBJ:
		return evalNumberInfixExpression(operator, left.(*object.Number), right.(*object.Number))
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return evalStringInfixExpression(operator, left.(*object.String), right.(*object.String))
	default:
		return nil, &TypeError{Operator: operator, Left: left.Type(), Right: right.Type()}
	}
}

// evalNumberInfixExpression follows IEEE-754: division by zero yields an
// infinity or NaN instead of an error.
func evalNumberInfixExpression(operator string, left, right *object.Number) (object.Object, error) {
	leftVal := left.Value
	rightVal := right.Value

	switch operator {
	case "+":
		return &object.Number{Value: leftVal + rightVal}, nil
	case "-":
		return &object.Number{Value: leftVal - rightVal}, nil
	case "*":
		return &object.Number{Value: leftVal * rightVal}, nil
	case "/":
		return &object.Number{Value: leftVal / rightVal}, nil
	case "<":
		return object.NativeBoolToBooleanObject(leftVal < rightVal), nil
	case ">":
		return object.NativeBoolToBooleanObject(leftVal > rightVal), nil
	case "<=":
		return object.NativeBoolToBooleanObject(leftVal <= rightVal), nil
	case ">=":
		return object.NativeBoolToBooleanObject(leftVal >= rightVal), nil
	default:
		return nil, &TypeError{Operator: operator, Left: left.Type(), Right: right.Type()}
	}
}

func evalStringInfixExpression(operator string, left, right *object.String) (object.Object, error) {
	leftVal := left.Value
	rightVal := right.Value

	switch operator {
	case "<":
		return object.NativeBoolToBooleanObject(leftVal < rightVal), nil
	case ">":
		return object.NativeBoolToBooleanObject(leftVal > rightVal), nil
	case "<=":
		return object.NativeBoolToBooleanObject(leftVal <= rightVal), nil
	case ">=":
		return object.NativeBoolToBooleanObject(leftVal >= rightVal), nil
	default:
		return nil, &TypeError{Operator: operator, Left: left.Type(), Right: right.Type()}
	}
}

// objectsEqual compares by value. Values of different types are never equal
// and no conversion happens first: 1 == true and 1 == "1" are both false,
// where truthiness would call them alike. Numbers compare as IEEE-754, so
// nan is unequal to itself.
func objectsEqual(left, right object.Object) bool {
	switch left := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		return ok && left.Value == r.Value
	case *object.Boolean:
		r, ok := right.(*object.Boolean)
		return ok && left.Value == r.Value
	case *object.String:
		r, ok := right.(*object.String)
		return ok && left.Value == r.Value
	case *object.Null:
		_, ok := right.(*object.Null)
		return ok
	}
	return false
}
