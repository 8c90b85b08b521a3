package model

import (
	"errors"
	"testing"
)

func TestParseOp(t *testing.T) {
	cases := []struct {
		in   string
		want Op
	}{
		{"get:1", Get(1)},
		{"put:1:10", Put(1, 10)},
		{" put:-3:0 ", Put(-3, 0)},
	}

	for _, tc := range cases {
		got, err := ParseOp(tc.in)
		if err != nil {
			t.Errorf("ParseOp(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseOp(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
		if again, _ := ParseOp(got.String()); again != got {
			t.Errorf("ParseOp(%q.String()) = %+v", tc.in, again)
		}
	}
}

func TestParseOp_Invalid(t *testing.T) {
	for _, in := range []string{"", "get", "get:x", "put:1", "put:1:x", "del:1", "get:1:2"} {
		if _, err := ParseOp(in); !errors.Is(err, ErrInvalidOp) {
			t.Errorf("ParseOp(%q) error = %v, want ErrInvalidOp", in, err)
		}
	}
}

func TestParseOps_StopsAtFirstError(t *testing.T) {
	if _, err := ParseOps([]string{"put:1:1", "nope", "get:1"}); !errors.Is(err, ErrInvalidOp) {
		t.Errorf("expected ErrInvalidOp, got %v", err)
	}

	ops, err := ParseOps([]string{"put:1:1", "get:1"})
	if err != nil {
		t.Fatalf("ParseOps: %v", err)
	}
	if len(ops) != 2 || ops[0] != Put(1, 1) || ops[1] != Get(1) {
		t.Errorf("ParseOps = %+v", ops)
	}
}
