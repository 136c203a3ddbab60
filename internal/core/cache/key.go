package cache

import "encoding/json"

// Key derives a deterministic cache key from an operation tag and its
// normalized parameters. Parameters are serialized as JSON so two requests
// with identical normalized parameters always map to the same key.
func Key(operation string, params any) string {
	if params == nil {
		return operation
	}
	b, err := json.Marshal(params)
	if err != nil {
		// Parameter structs are plain data; marshalling cannot realistically
		// fail, but a bare operation key only costs cache efficiency.
		return operation
	}
	return operation + ":" + string(b)
}
