//go:build unix

package path

// Local is the style native to the locally running operating system.
var Local = Unix
