// Package builtin implements the standard filter set on top of package
// kernel. Filters are grouped like the registry lists them: MultiPixel
// filters read pixel neighborhoods, Color filters are per-pixel.
package builtin
