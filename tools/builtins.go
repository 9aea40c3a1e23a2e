package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SayHelloSpec greets the name given in tool_input. The input is the bare
// name, not JSON.
var SayHelloSpec = Spec{
	Name:        "say_hello",
	Description: "Says hello to the provided name. tool_input is the name itself.",
	Fn:          SayHello,
}

func SayHello(_ context.Context, input string) (string, error) {
	return fmt.Sprintf("Hello, %s!", strings.TrimSpace(input)), nil
}

type CurrentTimeInput struct {
	Timezone string `json:"timezone,omitempty" jsonschema_description:"Optional IANA timezone name (e.g. Europe/Paris); defaults to UTC."`
}

var CurrentTimeSpec = Spec{
	Name:        "current_time",
	Description: "Returns the current date and time.",
	Params:      GenerateSchema[CurrentTimeInput](),
	Fn:          CurrentTime,
}

func CurrentTime(_ context.Context, input string) (string, error) {
	in, err := unmarshalInput[CurrentTimeInput](input)
	if err != nil {
		return "", err
	}
	loc := time.UTC
	if in.Timezone != "" {
		loc, err = time.LoadLocation(in.Timezone)
		if err != nil {
			return "", fmt.Errorf("unknown timezone %q", in.Timezone)
		}
	}
	return time.Now().In(loc).Format(time.RFC3339), nil
}

type CalculatorInput struct {
	Expression string `json:"expression" jsonschema_description:"A single binary arithmetic expression, e.g. '2+2', '15*3', '10/2'."`
}

var CalculatorSpec = Spec{
	Name:        "calculator",
	Description: "Performs basic arithmetic on one expression with a single +, -, * or / operator.",
	Params:      GenerateSchema[CalculatorInput](),
	Fn:          Calculate,
}

func Calculate(_ context.Context, input string) (string, error) {
	in, err := unmarshalInput[CalculatorInput](input)
	if err != nil {
		return "", err
	}
	result, err := evaluate(in.Expression)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(result, 'f', -1, 64), nil
}

// evaluate handles exactly one binary operation. The operator scan starts at
// index 1 so a leading minus reads as a sign, not an operator.
func evaluate(expr string) (float64, error) {
	expr = strings.ReplaceAll(expr, " ", "")
	if expr == "" {
		return 0, fmt.Errorf("empty expression")
	}
	for i := 1; i < len(expr); i++ {
		r := expr[i]
		if r != '+' && r != '-' && r != '*' && r != '/' {
			continue
		}
		left, err := strconv.ParseFloat(expr[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid left operand %q", expr[:i])
		}
		right, err := strconv.ParseFloat(expr[i+1:], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid right operand %q", expr[i+1:])
		}
		switch r {
		case '+':
			return left + right, nil
		case '-':
			return left - right, nil
		case '*':
			return left * right, nil
		case '/':
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return left / right, nil
		}
	}
	return 0, fmt.Errorf("no operator found in %q", expr)
}

// Builtins returns a registry preloaded with the built-in tool set.
func Builtins() *Registry {
	r := NewRegistry()
	for _, s := range []Spec{SayHelloSpec, CurrentTimeSpec, CalculatorSpec} {
		if err := r.Register(s); err != nil {
			// The built-in set is fixed; a failure here is a programming error.
			panic(err)
		}
	}
	return r
}
