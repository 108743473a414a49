// Package page applies the merged dictionary to an execution target and
// restores the target by reloading it.
//
// Each target moves between two states: unmodified and substituted. Apply
// reads the merged dictionary at call time and runs the substitution program
// inside the target; Restore reloads the target from its original source.
// Every failure is reported as a *domain.ApplyError, which callers turn into
// a status line instead of aborting.
package page
