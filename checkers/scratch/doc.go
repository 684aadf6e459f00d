// Package scratch exercises filesystem mutation with a scoped acquisition
// pattern: the scratch directory is created, verified, and guaranteed to be
// released on every exit path, including failure of the verification step.
package scratch
