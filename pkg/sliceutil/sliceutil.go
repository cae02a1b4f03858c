// Package sliceutil provides generic slice helpers.
package sliceutil

// Deduplicate returns the distinct elements of items in first-seen order.
func Deduplicate[T comparable](items []T) []T {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Map applies fn to every element of items.
func Map[T, U any](items []T, fn func(T) U) []U {
	result := make([]U, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}
