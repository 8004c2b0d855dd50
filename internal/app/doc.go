// Package app contains the core application logic. It reads the
// molecule, resolves the layered options, builds the scene and drives
// the rendering, decoupled from any specific entrypoint like a CLI.
package app
