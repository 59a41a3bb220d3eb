// Package hcl provides the HCL implementation of config.FileLoader. It parses
// `.hcl` declaration files, evaluates attribute expressions with a library of
// standard functions, and translates the result into the format-agnostic
// config.Model.
package hcl
