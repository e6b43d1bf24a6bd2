package runtime

import (
	"encoding/json"
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{\{\s*([\w.-]+)\s*\}\}`)

// maxResolveDepth caps recursion through nested containers. Anything nested
// deeper passes through unresolved.
const maxResolveDepth = 32

// ResolveArgs resolves every {{dot.path}} placeholder in args against the
// run context, walking nested maps and slices. The input is not mutated.
func ResolveArgs(args map[string]any, runCtx map[string]any) map[string]any {
	return resolveArgs(args, runCtx, 0)
}

// ResolveValue resolves placeholders in a single value. Strings are
// interpolated; maps and slices are walked recursively up to maxResolveDepth;
// other leaves pass through unchanged.
func ResolveValue(v any, runCtx map[string]any) any {
	return resolveValue(v, runCtx, 0)
}

func resolveArgs(args map[string]any, runCtx map[string]any, depth int) map[string]any {
	if args == nil {
		return nil
	}
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = resolveValue(v, runCtx, depth+1)
	}
	return out
}

func resolveValue(v any, runCtx map[string]any, depth int) any {
	if depth > maxResolveDepth {
		return v
	}
	switch t := v.(type) {
	case string:
		return resolveString(t, runCtx)
	case map[string]any:
		return resolveArgs(t, runCtx, depth)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = resolveValue(item, runCtx, depth+1)
		}
		return out
	}
	return v
}

// resolveString substitutes each placeholder with the context value at its
// dot-path. Strings substitute as-is, structured values as their JSON form,
// and missing paths as the empty string. Resolution is total: no input
// produces an error.
func resolveString(s string, runCtx map[string]any) string {
	return placeholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		path := placeholderRegex.FindStringSubmatch(match)[1]
		v, found := contextPath(runCtx, path)
		if !found || v == nil {
			return ""
		}
		if str, ok := v.(string); ok {
			return str
		}
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	})
}

func contextPath(runCtx map[string]any, path string) (any, bool) {
	var current any = runCtx
	for _, seg := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
