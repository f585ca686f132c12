package agent

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestMakeTool(t *testing.T) {
	type greetInput struct {
		Name string `json:"name"`
	}

	tool, handler := MakeTool("greet", "Greet someone by name",
		func(ctx context.Context, in greetInput) (string, error) {
			return "Hello, " + in.Name + "!", nil
		})

	if tool.Name != "greet" {
		t.Errorf("Name = %q, want %q", tool.Name, "greet")
	}
	if tool.Type != ToolTypeFunction {
		t.Errorf("Type = %q, want %q", tool.Type, ToolTypeFunction)
	}
	if tool.InputSchema == nil || tool.InputSchema.Type != "object" {
		t.Fatalf("InputSchema = %+v, want object schema", tool.InputSchema)
	}

	out, err := handler(context.Background(), []byte(`{"name":"Priya"}`))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if out != "Hello, Priya!" {
		t.Errorf("output = %q, want %q", out, "Hello, Priya!")
	}
}

func TestMakeToolBadInput(t *testing.T) {
	type input struct {
		N int `json:"n"`
	}
	_, handler := MakeTool("noop", "", func(ctx context.Context, _ input) (string, error) {
		return "", nil
	})

	_, err := handler(context.Background(), []byte(`{"n":"not a number"}`))
	if err == nil {
		t.Fatal("expected decode error")
	}
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if ae.Type != ErrInvalidInput {
		t.Errorf("error type = %q, want %q", ae.Type, ErrInvalidInput)
	}
}

func TestMakeToolEmptyInput(t *testing.T) {
	type none struct{}
	_, handler := MakeTool("ping", "", func(ctx context.Context, _ none) (string, error) {
		return "pong", nil
	})

	out, err := handler(context.Background(), nil)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if out != "pong" {
		t.Errorf("output = %q, want %q", out, "pong")
	}
}

func TestToolSet(t *testing.T) {
	type none struct{}
	ts := NewToolSet()
	for _, name := range []string{"first", "second", "third"} {
		name := name
		AddFunc(ts, name, "tool "+name, func(ctx context.Context, _ none) (string, error) {
			return name, nil
		})
	}

	if got := ts.Names(); !slices.Equal(got, []string{"first", "second", "third"}) {
		t.Errorf("Names = %v, want registration order", got)
	}
	if len(ts.Tools()) != 3 {
		t.Errorf("Tools len = %d, want 3", len(ts.Tools()))
	}

	h, ok := ts.Handler("second")
	if !ok {
		t.Fatal("missing handler for second")
	}
	out, err := h(context.Background(), nil)
	if err != nil || out != "second" {
		t.Errorf("handler returned (%q, %v), want (second, nil)", out, err)
	}

	if _, ok := ts.Handler("missing"); ok {
		t.Error("Handler should miss for unregistered name")
	}
}

func TestErrorSpoken(t *testing.T) {
	err := NewOutOfStockError("Blue Mug")
	if err.Spoken() == "" {
		t.Fatal("Spoken should not be empty")
	}
	if err.Spoken() == err.Message {
		t.Error("out of stock should carry a dedicated spoken line")
	}

	plain := &Error{Type: ErrInvalidTool, Message: "nope"}
	if plain.Spoken() != "nope" {
		t.Errorf("Spoken = %q, want fallback to Message", plain.Spoken())
	}

	withParam := NewInvalidSizeError("XXL", "Train Tee", []string{"S", "M", "L"})
	want := fmt.Sprintf("%s: %s (param: %s)", withParam.Type, withParam.Message, withParam.Param)
	if withParam.Error() != want {
		t.Errorf("Error() = %q, want %q", withParam.Error(), want)
	}
}
