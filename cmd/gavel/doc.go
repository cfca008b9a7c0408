// Package main hosts the gavel CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into pipeline
// runs, transcript inspection, batch processing, and configuration
// scaffolding. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it here through dedicated commands or flags.
package main
