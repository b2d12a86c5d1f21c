// Package mmfile provides platform-specific helpers for memory-mapping input files.
//
// On Unix the file is mapped read-only with golang.org/x/sys/unix; elsewhere
// it is read fully into memory and the release function does nothing.
package mmfile
