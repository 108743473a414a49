package domain

import (
	interfaces "decoder/internal/domain/interfaces"
	types "decoder/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Mapping   = types.Mapping
	Entry     = types.Entry
	State     = types.State
	Layers    = types.Layers
	Program   = types.Program
	PageState = types.PageState
)

const (
	PageUnmodified  = types.PageUnmodified
	PageSubstituted = types.PageSubstituted
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	StateStore        = interfaces.StateStore
	BaseSource        = interfaces.BaseSource
	MergedView        = interfaces.MergedView
	DictionaryService = interfaces.DictionaryService
	PageService       = interfaces.PageService
	Executor          = interfaces.Executor
)
