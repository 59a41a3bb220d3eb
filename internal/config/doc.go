// Package config defines the format-agnostic declaration model for the
// application, along with the Loader and FileLoader interfaces implemented by
// the format-specific packages.
//
// A Model lists the components to construct and the functions to call, the
// namespaces searched when resolving their symbols, and the default arguments
// patched into every declaration. Concrete loaders live in the hcl and filecfg
// packages; MultiLoader dispatches files between them by extension.
package config
