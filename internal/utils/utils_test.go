package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "a.txt", want: "a.txt"},
		{name: "nested path", in: "docs/intro/a.md", want: "a.md"},
		{name: "trailing slash", in: "docs/", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseName(tt.in))
		})
	}
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single extension", in: "notes.txt", want: "notes"},
		{name: "only last extension", in: "archive.tar.gz", want: "archive.tar"},
		{name: "no extension", in: "README", want: "README"},
		{name: "dotfile", in: ".env", want: ".env"},
		{name: "dotfile with extension", in: ".env.local", want: ".env"},
		{name: "leading dots", in: "..hidden", want: "..hidden"},
		{name: "trailing dot", in: "name.", want: "name"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectName(tt.in))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "proj1", Slug("proj", 1))
	assert.Equal(t, "proj12", Slug("proj", 12))
}
