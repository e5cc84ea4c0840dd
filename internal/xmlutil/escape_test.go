package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain text untouched", input: "demo project", expected: "demo project"},
		{name: "ampersand", input: "R&D", expected: "R&amp;D"},
		{name: "angle brackets", input: "<demo project>", expected: "&lt;demo project&gt;"},
		{name: "quotes", input: `say "hi"`, expected: "say &quot;hi&quot;"},
		{name: "apostrophe", input: "it's", expected: "it&apos;s"},
		{name: "all five", input: `<&>"'`, expected: "&lt;&amp;&gt;&quot;&apos;"},
		{name: "single pass", input: "&amp;", expected: "&amp;amp;"},
		{name: "multibyte preserved", input: "héllo <wörld>", expected: "héllo &lt;wörld&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}
