package utils

import (
	"strconv"
	"strings"
)

// BaseName strips any directory part of an uploaded filename.
func BaseName(name string) string {
	return name[strings.LastIndex(name, "/")+1:]
}

// ProjectName drops the last extension of a base name. Leading dots do not start an extension.
func ProjectName(base string) string {
	dot := strings.LastIndex(base, ".")
	if dot <= 0 || strings.Trim(base[:dot], ".") == "" {
		return base
	}

	return base[:dot]
}

func Slug(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}
