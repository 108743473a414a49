// Package domain defines core data models, contracts and error kinds shared
// across the decoder. It contains plain types and interfaces only.
package domain
