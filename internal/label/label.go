// Package label renders display labels for completion suggestions.
package label

import "fmt"

// CompletionKind mirrors the LSP CompletionItemKind numbering.
type CompletionKind int

// Completion item kinds used by label formatting.
const (
	KindText          CompletionKind = 1
	KindMethod        CompletionKind = 2
	KindFunction      CompletionKind = 3
	KindConstructor   CompletionKind = 4
	KindField         CompletionKind = 5
	KindVariable      CompletionKind = 6
	KindClass         CompletionKind = 7
	KindInterface     CompletionKind = 8
	KindModule        CompletionKind = 9
	KindProperty      CompletionKind = 10
	KindUnit          CompletionKind = 11
	KindValue         CompletionKind = 12
	KindEnum          CompletionKind = 13
	KindKeyword       CompletionKind = 14
	KindSnippet       CompletionKind = 15
	KindColor         CompletionKind = 16
	KindFile          CompletionKind = 17
	KindReference     CompletionKind = 18
	KindFolder        CompletionKind = 19
	KindEnumMember    CompletionKind = 20
	KindConstant      CompletionKind = 21
	KindStruct        CompletionKind = 22
	KindEvent         CompletionKind = 23
	KindOperator      CompletionKind = 24
	KindTypeParameter CompletionKind = 25
)

// CompletionItem is the protocol metadata a completion label is derived from.
type CompletionItem struct {
	Kind   CompletionKind
	Label  string
	Detail string
}

// ForCompletion returns a display label override for cross-reference
// completions with detail text: "{detail} - {label}". Every other kind/detail
// combination defers to default rendering (ok == false).
func ForCompletion(item CompletionItem) (string, bool) {
	if item.Kind != KindReference || item.Detail == "" {
		return "", false
	}
	return fmt.Sprintf("%s - %s", item.Detail, item.Label), true
}
