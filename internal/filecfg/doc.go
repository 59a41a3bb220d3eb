// Package filecfg provides YAML and TOML implementations of
// config.FileLoader. Both formats share one document layout:
//
//	namespaces: [text, io]
//	defaults: {sep: "-"}
//	components:
//	  - symbol: Printer
//	    name: out
//	    strict: true
//	    arguments: {prefix: ">"}
//	calls:
//	  - symbol: text.Join
//	    arguments: {tokens: [a, b]}
package filecfg
