// Package renderer turns perfsynth reports into Markdown documents.
package renderer
