// Package ui centralizes terminal color handling for diagnostic output:
// ANSI themes for the CLI banner and summary, and lipgloss palettes for the
// watch dashboard. The emitted sequence itself is never colorized.
package ui
