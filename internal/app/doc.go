// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that turns loaded
// declarations into constructed components and function results, decoupled
// from any specific entrypoint like a CLI.
package app
