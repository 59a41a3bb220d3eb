// Package registry provides the central "glue" for building components by name.
//
// The Registry stores mappings between the symbol names used by callers and
// declaration files (e.g., "text.Join" or a bare "Printer") and the compiled Go
// factories that implement them. Each registered symbol carries parameter
// descriptors derived once, at registration time, from the `arg` struct tags
// of its input struct. Those descriptors drive both argument filtering and
// default extraction.
//
// Symbols are resolved either exactly as given or by trying an ordered list of
// candidate namespaces; the first namespace that yields a match wins.
// Construction comes in two flavours: strict, which rejects argument keys the
// target does not declare, and tolerant, which silently drops them.
package registry
