package enumconvinternal

import (
	"errors"
	"slices"
	"sort"
)

// reorderErrors flattens joined errors and sorts them by message so that
// diagnostics come out in a stable order.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// The underlying errors are appended to the list. So the joined
			// error itself can be removed.
			list = append(list, u.Unwrap()...)
			list[i] = nil
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	if len(list) == 1 {
		return list[0]
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
