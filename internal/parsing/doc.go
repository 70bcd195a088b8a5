// Package parsing holds the text heuristics shared across the analyzers:
// section segmentation, contact details, publication counts and date helpers.
package parsing
