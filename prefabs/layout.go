package prefabs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// LayoutOutput is the script global read back after a layout script ran.
const LayoutOutput = "positions"

var ErrLayoutOutput = errors.New("prefabs: layout script must set positions to an array of [x, y, z]")

// RunLayout resolves the primitive positions described by spec.
func RunLayout(spec LayoutSpec) ([][3]float64, error) {
	if spec.Script == "" {
		return append([][3]float64(nil), spec.Positions...), nil
	}

	src, err := LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", spec.Script, err)
	}
	return runLayoutSource(src, spec.Params)
}

func runLayoutSource(src []byte, params map[string]any) ([][3]float64, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == LayoutOutput {
			return nil, fmt.Errorf("prefabs: layout param %q is reserved", name)
		}
		if err := script.Add(name, params[name]); err != nil {
			return nil, fmt.Errorf("prefabs: layout param %q: %w", name, err)
		}
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("prefabs: run layout script: %w", err)
	}

	v := compiled.Get(LayoutOutput)
	if v == nil || v.IsUndefined() {
		return nil, ErrLayoutOutput
	}
	raw, ok := v.Value().([]any)
	if !ok {
		return nil, ErrLayoutOutput
	}

	out := make([][3]float64, 0, len(raw))
	for i, item := range raw {
		p, err := toVec3(item)
		if err != nil {
			return nil, fmt.Errorf("%w: positions[%d]: %v", ErrLayoutOutput, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func toVec3(item any) ([3]float64, error) {
	var out [3]float64
	switch v := item.(type) {
	case []any:
		if len(v) != 3 {
			return out, fmt.Errorf("want 3 components, got %d", len(v))
		}
		for i := range v {
			f, ok := toFloat(v[i])
			if !ok {
				return out, fmt.Errorf("component %d is %T", i, v[i])
			}
			out[i] = f
		}
	case map[string]any:
		for i, key := range []string{"x", "y", "z"} {
			f, ok := toFloat(v[key])
			if !ok {
				return out, fmt.Errorf("field %s is %T", key, v[key])
			}
			out[i] = f
		}
	default:
		return out, fmt.Errorf("unexpected %T", item)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
