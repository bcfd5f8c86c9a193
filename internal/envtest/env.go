// Package envtest provides fake environment variable lookups for tests.
package envtest

import "fmt"

// Empty is an environment with no variables.
var Empty Env

// Env is a fake environment.
// The zero value is an empty environment.
type Env map[string]string

// Pairs builds an environment from alternating names and values.
// There must be an even number of items.
func Pairs(pairs ...string) (Env, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%d items in environment are not even", len(pairs))
	}

	env := make(Env, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		env[pairs[i]] = pairs[i+1]
	}
	return env, nil
}

// MustPairs is like Pairs, but panics on an odd number of items.
func MustPairs(pairs ...string) Env {
	env, err := Pairs(pairs...)
	if err != nil {
		panic(err)
	}
	return env
}

// Getenv is an analog for the os.Getenv operation.
func (e Env) Getenv(k string) string {
	return e[k]
}

// LookupEnv is an analog for the os.LookupEnv operation.
func (e Env) LookupEnv(k string) (string, bool) {
	v, ok := e[k]
	return v, ok
}
