package compare

import "reflect"

// ArraySingle evaluates membership of a single value in a list using strict
// (type-and-value) equality. "contains"/"==" test membership,
// "not_contains"/"!=" its negation.
func ArraySingle(op Operator, value any, list []any) bool {
	if op == "" || value == nil || list == nil {
		return false
	}

	switch op {
	case OpContains, OpEqual:
		return containsValue(list, value)
	case OpNotContains, OpNotEqual:
		return !containsValue(list, value)
	}
	return false
}

// ArrayMulti evaluates intersection between a value list and a candidate
// list. A non-list value is wrapped in a one-element list first. "contains"
// requires a non-empty intersection, "not_contains" an empty one, and
// "contains_all" requires every requested value to be present. Duplicates in
// the value list are not deduplicated: "contains_all" is a literal
// cardinality check.
func ArrayMulti(op Operator, value any, list []any) bool {
	if op == "" || value == nil || list == nil {
		return false
	}

	values, ok := value.([]any)
	if !ok {
		values = []any{value}
	}

	matched := 0
	for _, v := range values {
		if containsValue(list, v) {
			matched++
		}
	}

	switch op {
	case OpContains:
		return matched > 0
	case OpNotContains:
		return matched == 0
	case OpContainsAll:
		return matched == len(values)
	}
	return false
}

// containsValue reports strict membership. reflect.DeepEqual gives
// type-and-value equality without panicking on uncomparable types.
func containsValue(list []any, value any) bool {
	for _, item := range list {
		if reflect.DeepEqual(item, value) {
			return true
		}
	}
	return false
}
