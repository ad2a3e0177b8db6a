package constraints

import "github.com/nextmv-io/sdk/mip"

// boolVar is a thin wrapper kept for call sites that build up a slice of
// variables incrementally before handing them to reifyOr.
type boolVar struct {
	v mip.Bool
}

func toBools(items []boolVar) []mip.Bool {
	out := make([]mip.Bool, len(items))
	for i, it := range items {
		out[i] = it.v
	}
	return out
}

// intParam reads an integer constraint parameter, tolerating the fact that
// JSON-decoded free-form parameters surface as float64.
func intParam(params map[string]any, key string, fallback int) int {
	raw, ok := params[key]
	if !ok {
		return fallback
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}
