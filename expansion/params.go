package expansion

// Params holds named argument values for a test implementation, keyed by
// parameter name. Values can be anything, but declarations are normally built
// from JSON-like data: scalars, []interface{}, and nested maps.
type Params map[string]interface{}

// copyValue returns a recursive copy of v for the value kinds that case and
// option declarations are normally built from: Params, map[string]interface{},
// and []interface{} are copied element by element. Values of any other type
// are shared as-is; a case that needs an exclusive mutable value of some other
// type must declare a distinct instance per case.
func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Params:
		return Params(copyMap(val))
	case map[string]interface{}:
		return copyMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = copyValue(elem)
		}
		return out
	default:
		return v
	}
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copySlice(values []interface{}) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = copyValue(v)
	}
	return out
}

// mergeParams merges the given parameter sets left to right into a fresh map.
// On a key collision the later set wins.
func mergeParams(sets ...Params) Params {
	merged := Params{}
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}
