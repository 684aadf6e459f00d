// Package osinfo probes the host environment surface of the suite: working
// directory, logged-in user, a named environment variable, and path queries
// against the current directory.
//
// Variable absence prints a sentinel and continues; filesystem and identity
// lookup failures surface as common.EnvError and abort the run.
package osinfo
