// Package substitute rewrites text with a cipher -> decoded mapping.
//
// Text walks a string one grapheme cluster at a time. A cluster that is not a
// key itself is retried code point by code point, so keys that are single
// code points still match inside combining sequences.
//
// Tree and Document apply Text to every text node of an HTML tree and to the
// alt, title and placeholder attributes of its elements. script, style and
// noscript subtrees are skipped entirely. Children are visited before the
// attributes of their parent.
//
// Program packages the same walk for an execution target: as JS for a live
// page and as a native function over *html.Node for parsed documents.
package substitute
