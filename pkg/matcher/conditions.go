package matcher

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cortexhq/cortex/pkg/models"
)

// evalConditions reports whether every condition holds against the payload.
// Conditions are ANDed; an empty list matches everything.
func evalConditions(conds []models.Condition, payload map[string]any) bool {
	for _, c := range conds {
		if !evalCondition(c, payload) {
			return false
		}
	}
	return true
}

func evalCondition(c models.Condition, payload map[string]any) bool {
	actual, found := resolvePath(payload, c.Field)

	switch c.Op {
	case models.OpExists:
		return found && actual != nil
	case models.OpEq:
		return found && looseEqual(actual, c.Value)
	case models.OpNeq:
		return !found || !looseEqual(actual, c.Value)
	case models.OpGt, models.OpGte, models.OpLt, models.OpLte:
		a, aok := coerceNumber(actual)
		b, bok := coerceNumber(c.Value)
		if !found || !aok || !bok {
			return false
		}
		switch c.Op {
		case models.OpGt:
			return a > b
		case models.OpGte:
			return a >= b
		case models.OpLt:
			return a < b
		default:
			return a <= b
		}
	case models.OpContains:
		s, sok := actual.(string)
		sub, subok := c.Value.(string)
		if !found || !sok || !subok {
			return false
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	case models.OpIn:
		list, ok := c.Value.([]any)
		if !found || !ok {
			return false
		}
		for _, v := range list {
			if looseEqual(actual, v) {
				return true
			}
		}
		return false
	}
	return false
}

// resolvePath walks a dot-path into nested maps. The second return is false
// when any segment is missing or a non-map is traversed into.
func resolvePath(payload map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var current any = payload
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

// looseEqual compares numerically when both sides coerce to numbers, and
// structurally otherwise. JSON decoding makes all numbers float64, but
// condition values written in Go tests or compiled plans may be ints.
func looseEqual(a, b any) bool {
	an, aok := coerceNumber(a)
	bn, bok := coerceNumber(b)
	if aok && bok {
		return an == bn
	}
	return reflect.DeepEqual(a, b)
}

func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
