// Package gitbookconvert converts DocBook books into GitBook-style
// directories of Markdown chapters. An external toolchain renders the
// DocBook source to a single HTML5 document; the core reconstructs the
// document outline from the embedded table of contents, partitions the
// HTML body so each outline node owns exactly its own subtree, and
// rewrites a handful of DocBook HTML idioms into generic HTML before
// Markdown rendering.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// htmltomarkdown/, docbook/).
package gitbookconvert
