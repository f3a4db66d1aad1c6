package joyconfig

import "strings"

// Version is the runtime's version string, in the same bare-var-set-by
// -ldflags style as config.Version (adapted from internal/config/
// constants.go, generalized from one source language's file extensions to
// this one's).
var Version = "0.1.0"

// SourceExtensions are the recognized Joy program file extensions.
var SourceExtensions = []string{".joy"}

// TrimSourceExt removes a recognized source extension from name, returning
// name unchanged if none matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(name, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}
