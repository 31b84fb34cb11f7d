package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	got := RenderTree([]string{"main.go", "pkg/b/b.go", "pkg/a.go", "README.md"})

	want := []string{
		"./",
		"├── pkg/",
		"│   ├── b/",
		"│   │   └── b.go",
		"│   └── a.go",
		"├── main.go",
		"└── README.md",
	}
	assert.Equal(t, want, got)
}

func TestRenderTreeEmpty(t *testing.T) {
	assert.Equal(t, []string{"./"}, RenderTree(nil))
}
