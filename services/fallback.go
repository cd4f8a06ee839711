package services

// The fallback policy keeps the service useful without its store: when the
// store did not answer, or answered with nothing, the static sample wins.
// The deliberate cost is that "legitimately no results" and "database empty"
// are indistinguishable.

func resolveList[T any](answered bool, live []T, sample []T) []T {
	if !answered || len(live) == 0 {
		return sample
	}
	return live
}

func resolveOne[T any](answered bool, live *T, sample *T) *T {
	if answered && live != nil {
		return live
	}
	return sample
}
