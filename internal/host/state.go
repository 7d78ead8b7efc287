package host

import (
	"fmt"
	"reflect"
)

// Manage stores v as the app's single value of type *T. It returns false,
// leaving the existing value in place, when a *T is already managed.
func Manage[T any](a *App, v *T) bool {
	key := reflect.TypeFor[*T]()
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.states[key]; ok {
		return false
	}
	a.states[key] = v
	return true
}

// TryState returns the managed *T, if any.
func TryState[T any](a *App) (*T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.states[reflect.TypeFor[*T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// State is TryState for command handlers: a missing value is ErrStateNotFound.
func State[T any](a *App) (*T, error) {
	v, ok := TryState[T](a)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStateNotFound, reflect.TypeFor[T]())
	}
	return v, nil
}
