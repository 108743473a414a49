// Package dictionary owns the three dictionary layers and their merged view.
//
// The base layer is loaded once and never mutated. The user layer and the set
// of suppressed base keys are loaded from a domain.StateStore and written back
// as a whole after every mutation, before the mutation becomes visible. The
// merged view is recomputed from the layers on every read:
//
//	merged = (base \ suppressed) ∪ user
//
// with user values winning for keys present in both.
package dictionary
