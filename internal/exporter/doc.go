// Package exporter provides CSV export functionality for the processed
// tables and insight sections. Output is written with a UTF-8 BOM so the
// files open cleanly in Excel, which is how the analysts review them.
package exporter
