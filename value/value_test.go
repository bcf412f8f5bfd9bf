/*
File    : glox/value/value_test.go
Package : value
*/
package value

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is false", nil, false},
		{"false is false", false, false},
		{"true is true", true, true},
		{"zero is truthy", 0.0, true},
		{"empty string is truthy", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsTruthy(c.v); got != c.want {
				t.Errorf("IsTruthy(%#v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestIsEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil equals nil", nil, nil, true},
		{"nil never equals a value", nil, 0.0, false},
		{"numbers by value", 1.0, 1.0, true},
		{"different numbers", 1.0, 2.0, false},
		{"strings by content", "a", "a", true},
		{"string and number never equal", "1", 1.0, false},
		{"booleans by value", true, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsEqual(c.a, c.b); got != c.want {
				t.Errorf("IsEqual(%#v, %#v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", nil, "nil"},
		{"true", true, "true"},
		{"whole number drops .0", 3.0, "3"},
		{"fractional number keeps decimals", 3.5, "3.5"},
		{"negative whole number", -4.0, "-4"},
		{"string passes through", "hi", "hi"},
		{"uninitialized", Uninitialized, "uninitialized"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Stringify(c.v); got != c.want {
				t.Errorf("Stringify(%#v) = %q, want %q", c.v, got, c.want)
			}
		})
	}
}

func TestIsUninitialized(t *testing.T) {
	if !IsUninitialized(Uninitialized) {
		t.Error("Uninitialized should report itself as uninitialized")
	}
	if IsUninitialized(nil) {
		t.Error("nil is a real value, distinct from Uninitialized")
	}
	if IsUninitialized(0.0) {
		t.Error("0 is a real value, distinct from Uninitialized")
	}
}
