/*
File   : lox/internal/callable/natives.go

Native builtins. §4.6 calls for a single wall-clock native; SPEC_FULL's
DOMAIN STACK adds two more (envGet and envSet) so the `--env-json` CLI
flag has somewhere to surface the blob it loads, exercising gjson the way
CWBudde-go-dws exercises it for its own config surface.
*/
package callable

import (
	"fmt"
	"time"

	"github.com/loxlang/lox/internal/values"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// NewClock returns the `clock()` native: seconds since the Unix epoch,
// as a float so it composes with ordinary Lox arithmetic.
func NewClock() *Native {
	return &Native{
		NameStr:  "clock",
		ArityVal: 0,
		Fn: func(args []values.Value) (values.Value, error) {
			return values.Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	}
}

// NewEnvGet returns the `envGet(path)` native, backed by the JSON blob
// passed to the CLI's --env-json flag. path is a gjson dotted path
// ("server.port"); a path that doesn't resolve returns nil rather than
// raising a runtime error, since scripts use this to probe for optional
// configuration. This is a single read-only lookup, not a module or
// import system — the non-goal in §2 is untouched.
func NewEnvGet(jsonBlob string) *Native {
	return &Native{
		NameStr:  "envGet",
		ArityVal: 1,
		Fn: func(args []values.Value) (values.Value, error) {
			path, ok := args[0].(values.String)
			if !ok {
				return nil, fmt.Errorf("envGet() path must be a string")
			}
			result := gjson.Get(jsonBlob, string(path))
			if !result.Exists() {
				return values.Nil, nil
			}
			switch result.Type {
			case gjson.String:
				return values.String(result.String()), nil
			case gjson.Number:
				return values.Number(result.Float()), nil
			case gjson.True, gjson.False:
				return values.Bool(result.Bool()), nil
			default:
				return values.String(result.Raw), nil
			}
		},
	}
}

// NewEnvSet returns the `envSet(path, value)` native. It is a pure
// function, not a mutation of the host's --env-json blob: it returns the
// JSON text that would result from setting path to value, as a Lox
// String, leaving the interpreter's own copy untouched. envGet keeps
// reading the original blob; no native reads the returned string back.
func NewEnvSet(jsonBlob string) *Native {
	return &Native{
		NameStr:  "envSet",
		ArityVal: 2,
		Fn: func(args []values.Value) (values.Value, error) {
			path, ok := args[0].(values.String)
			if !ok {
				return nil, fmt.Errorf("envSet() path must be a string")
			}
			raw, err := toJSONPrimitive(args[1])
			if err != nil {
				return nil, err
			}
			updated, err := sjson.Set(jsonBlob, string(path), raw)
			if err != nil {
				return nil, fmt.Errorf("envSet() %v", err)
			}
			return values.String(updated), nil
		},
	}
}

// toJSONPrimitive converts a Lox value to the Go type sjson.Set expects,
// rejecting callables/instances: JSON has no encoding for a closure.
func toJSONPrimitive(v values.Value) (interface{}, error) {
	switch x := v.(type) {
	case values.NilValue:
		return nil, nil
	case values.Bool:
		return bool(x), nil
	case values.Number:
		return float64(x), nil
	case values.String:
		return string(x), nil
	default:
		return nil, fmt.Errorf("envSet() value must be nil, a bool, a number, or a string")
	}
}
