package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/inkwell/pkg/langdetect"
)

func TestGuess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want string
		ok   bool
	}{
		{
			name: "shebang bash",
			code: "#!/bin/bash\necho hi",
			want: "bash",
			ok:   true,
		},
		{
			name: "shebang python",
			code: "#!/usr/bin/env python\nprint(1)",
			want: "python",
			ok:   true,
		},
		{
			name: "go package clause",
			code: "package main\n\nfunc main() {}",
			want: "go",
			ok:   true,
		},
		{
			name: "python def",
			code: "def add(a, b):\n    return a + b",
			want: "python",
			ok:   true,
		},
		{
			name: "json object",
			code: "{\"key\": \"value\"}",
			want: "json",
			ok:   true,
		},
		{
			name: "sql query",
			code: "SELECT id FROM users WHERE active",
			want: "sql",
			ok:   true,
		},
		{
			name: "dockerfile",
			code: "FROM alpine:3.20\nRUN apk add curl",
			want: "dockerfile",
			ok:   true,
		},
		{
			name: "rust",
			code: "fn main() { let x = 1; }",
			want: "rust",
			ok:   true,
		},
		{
			name: "html document",
			code: "<!DOCTYPE html>\n<title>x</title>",
			want: "html",
			ok:   true,
		},
		{
			name: "empty",
			code: "",
			want: "",
			ok:   false,
		},
		{
			name: "whitespace only",
			code: "  \n\t\n",
			want: "",
			ok:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := langdetect.Guess(tc.code)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func BenchmarkGuess(b *testing.B) {
	code := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n"
	for i := 0; i < b.N; i++ {
		langdetect.Guess(code)
	}
}
