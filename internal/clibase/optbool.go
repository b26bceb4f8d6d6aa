package clibase

import (
	"fmt"
	"strconv"
)

// optBool is a boolean flag with an optional inline value: "--fixed" sets
// true, "--fixed=0|1|false|true" sets it explicitly, anything else errors.
type optBool struct{ dst *bool }

func (b *optBool) String() string {
	if b == nil || b.dst == nil {
		return "false"
	}
	return strconv.FormatBool(*b.dst)
}

func (b *optBool) Set(v string) error {
	switch v {
	case "1", "true":
		*b.dst = true
	case "0", "false":
		*b.dst = false
	default:
		return fmt.Errorf("invalid value %q (want 0|1|false|true)", v)
	}
	return nil
}

func (b *optBool) IsBoolFlag() bool { return true }
