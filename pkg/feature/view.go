package feature

// View is a read view of a toggle set. It has no state of its own;
// every read goes through Toggles.Get.
type View struct {
	t *Toggles
}

// Get is equivalent to Toggles.Get.
func (v View) Get(name string) (bool, error) {
	return v.t.Get(name)
}

// Must returns the value of the named feature and panics if it cannot be
// evaluated. It is meant for templates and init code where the feature
// set is known.
func (v View) Must(name string) bool {
	value, err := v.t.Get(name)
	if err != nil {
		panic(err)
	}
	return value
}
