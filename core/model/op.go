package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type OpKind string

const (
	OpGet OpKind = "get"
	OpPut OpKind = "put"
)

var (
	ErrInvalidOp = errors.New("invalid op")
)

// Op is a single cache call in a recorded workload.
type Op struct {
	Kind  OpKind
	Key   int
	Value int `json:",omitempty"`
}

func Get(key int) Op {
	return Op{Kind: OpGet, Key: key}
}

func Put(key, value int) Op {
	return Op{Kind: OpPut, Key: key, Value: value}
}

func (o Op) String() string {
	if o.Kind == OpPut {
		return fmt.Sprintf("put:%d:%d", o.Key, o.Value)
	}

	return fmt.Sprintf("get:%d", o.Key)
}

// ParseOp parses "get:<key>" or "put:<key>:<value>".
func ParseOp(s string) (Op, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")

	switch {
	case len(parts) == 2 && OpKind(parts[0]) == OpGet:
		key, err := strconv.Atoi(parts[1])
		if err != nil {
			return Op{}, fmt.Errorf("%w %q: key: %v", ErrInvalidOp, s, err)
		}

		return Get(key), nil
	case len(parts) == 3 && OpKind(parts[0]) == OpPut:
		key, err := strconv.Atoi(parts[1])
		if err != nil {
			return Op{}, fmt.Errorf("%w %q: key: %v", ErrInvalidOp, s, err)
		}

		value, err := strconv.Atoi(parts[2])
		if err != nil {
			return Op{}, fmt.Errorf("%w %q: value: %v", ErrInvalidOp, s, err)
		}

		return Put(key, value), nil
	}

	return Op{}, fmt.Errorf("%w %q: want get:<key> or put:<key>:<value>", ErrInvalidOp, s)
}

func ParseOps(in []string) ([]Op, error) {
	ops := make([]Op, 0, len(in))
	for _, s := range in {
		op, err := ParseOp(s)
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	return ops, nil
}
