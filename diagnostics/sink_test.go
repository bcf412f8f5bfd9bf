/*
File    : glox/diagnostics/sink_test.go
Package : diagnostics
*/
package diagnostics

import (
	"bytes"
	"testing"

	"github.com/glox-lang/glox/token"
)

func TestStaticErrorSetsFlagAndFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf, false)

	sink.StaticError(3, " at 'foo'", "Expect ';' after value.")

	if !sink.HadError() {
		t.Fatal("expected HadError to be true after StaticError")
	}
	want := "[line 3] Error at 'foo': Expect ';' after value.\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRuntimeErrorSetsFlagAndFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf, false)

	sink.RuntimeError(token.New(token.IDENTIFIER, "x", nil, 7), "Undefined variable 'x'.")

	if !sink.HadRuntimeError() {
		t.Fatal("expected HadRuntimeError to be true after RuntimeError")
	}
	want := "Undefined variable 'x'.\n[line 7]\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestResetClearsBothFlags(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf, false)
	sink.StaticError(1, "", "boom")
	sink.RuntimeError(token.New(token.EOF, "", nil, 1), "boom")

	sink.Reset()

	if sink.HadError() || sink.HadRuntimeError() {
		t.Error("Reset should clear both flags")
	}
}

func TestMessagesReturnsACopy(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf, false)
	sink.StaticError(1, "", "first")

	msgs := sink.Messages()
	msgs[0] = "mutated"

	if sink.Messages()[0] == "mutated" {
		t.Error("Messages() should return a defensive copy")
	}
}
