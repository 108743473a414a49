package substitute

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"decoder/internal/domain"
)

// ProgramName identifies the substitution program in logs.
const ProgramName = "substitute-tree"

var errNoDictionary = errors.New("substitute-tree: missing dictionary argument")

// pageJS mirrors Tree for a live document. It takes the dictionary as its only
// argument and returns the number of rewritten targets.
const pageJS = `(dict) => {
	const own = Object.prototype.hasOwnProperty;
	const get = (k) => (own.call(dict, k) && dict[k]) || '';
	const seg = (typeof Intl !== 'undefined' && Intl.Segmenter)
		? new Intl.Segmenter(undefined, { granularity: 'grapheme' })
		: null;
	const units = (s) => seg ? Array.from(seg.segment(s), (x) => x.segment) : Array.from(s);
	const sub = (s) => {
		let out = '';
		for (const u of units(s)) {
			const v = get(u);
			if (v) { out += v; continue; }
			for (const ch of u) out += get(ch) || ch;
		}
		return out;
	};
	const skip = /^(SCRIPT|STYLE|NOSCRIPT)$/i;
	const attrs = ['alt', 'title', 'placeholder'];
	let changed = 0;
	const walk = (node) => {
		if (node.nodeType === Node.TEXT_NODE) {
			const orig = node.textContent;
			const out = sub(orig);
			if (out !== orig) { node.textContent = out; changed++; }
			return;
		}
		if (node.nodeType !== Node.ELEMENT_NODE) return;
		if (skip.test(node.tagName)) return;
		for (const child of Array.from(node.childNodes)) walk(child);
		for (const name of attrs) {
			if (!node.hasAttribute(name)) continue;
			const val = node.getAttribute(name);
			const out = sub(val);
			if (out !== val) { node.setAttribute(name, out); changed++; }
		}
	};
	if (document.body) walk(document.body);
	return changed;
}`

// Program returns the substitution program. Its single argument is the
// merged dictionary.
func Program() domain.Program {
	return domain.Program{
		Name:   ProgramName,
		JS:     pageJS,
		Native: runNative,
	}
}

func runNative(root *html.Node, args []any) error {
	if len(args) != 1 {
		return errNoDictionary
	}
	switch dict := args[0].(type) {
	case domain.Mapping:
		Document(root, dict)
	case map[string]string:
		Document(root, domain.Mapping(dict))
	default:
		return fmt.Errorf("substitute-tree: dictionary argument is %T", args[0])
	}
	return nil
}
