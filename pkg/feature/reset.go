package feature

// wireResets hands each feature with a reset hook a callback that drops
// its memoized value. Calling the callback repeatedly is harmless.
func wireResets(features []Feature, t *Toggles) {
	for _, f := range features {
		if f.ResetOn == nil {
			continue
		}
		name := f.Name
		f.ResetOn(func() {
			t.Invalidate(name)
		})
	}
}
