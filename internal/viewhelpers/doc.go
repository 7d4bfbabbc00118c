// Package viewhelpers holds the pure presentation helpers shared by facet views:
// value display formatting and class-name composition.
package viewhelpers
