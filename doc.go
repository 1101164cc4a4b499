// Package jsontree implements a self-contained JSON engine: a
// tokenizer, a recursive-descent parser, an in-memory value tree with
// mutation operations, a serializer, and a chunked streaming parser
// that consumes input incrementally and emits structural events
// through a callback.
//
// The package is organized as follows:
//
//   - token: lexical token types shared by the tokenizer and parser
//   - the root package: value tree, parser, serializer, streaming
//     parser and file I/O
//   - cmd/jt: a small CLI utility to validate and reformat JSON
//
// Parsing is strict: the full RFC 8259 grammar with exact
// numeric-literal validation, UTF-16 surrogate-pair decoding in string
// escapes, and a hard nesting-depth ceiling protecting against
// adversarial input.  Trees built by the parser never contain NaN or
// infinite numbers, so serializing is total and round-trip safe.
//
// Every operation runs synchronously on the calling goroutine;
// "streaming" refers to feeding input in successive chunks, not to
// concurrent execution.  A Value tree must not be mutated from
// multiple goroutines.
//
// The CLI utility is in the directory cmd/jt.  You can install it
// with:
//
//	go install github.com/arnodel/jsontree/cmd/jt
package jsontree
