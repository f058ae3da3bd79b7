package feature

import "fmt"

// validateFeatures checks the shape of the construction input.
func validateFeatures(features []Feature) error {
	if len(features) == 0 {
		return errArgument(`"features" must contain at least 1 items`)
	}

	seen := make(map[string]int, len(features))
	for i, f := range features {
		if f.Name == "" {
			return errArgument(fmt.Sprintf(`"features" at position %d fails because ["name" is not allowed to be empty]`, i))
		}
		if f.Test == nil {
			return errArgument(fmt.Sprintf(`"features" at position %d fails because ["test" is required]`, i))
		}
		if first, dup := seen[f.Name]; dup {
			return errArgument(fmt.Sprintf(`"features" position %d contains a duplicate value of position %d (name %q)`, i, first, f.Name))
		}
		seen[f.Name] = i
	}

	return nil
}
