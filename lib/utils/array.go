package utils

func Contains[T comparable](arr []T, item T) bool {
	for _, i := range arr {
		if i == item {
			return true
		}
	}

	return false
}

// Dedup returns arr without repeated items, keeping the first occurrence of each.
func Dedup[T comparable](arr []T) []T {
	seen := make(map[T]struct{}, len(arr))
	result := make([]T, 0, len(arr))

	for _, i := range arr {
		if _, ok := seen[i]; ok {
			continue
		}

		seen[i] = struct{}{}
		result = append(result, i)
	}

	return result
}
