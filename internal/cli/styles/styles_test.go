package styles

import (
	"strings"
	"testing"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

func TestTokenHex_CoversPalette(t *testing.T) {
	t.Parallel()

	for _, token := range models.DefaultPalette {
		hex := TokenHex(token)
		if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
			t.Errorf("TokenHex(%q) = %q", token, hex)
		}
	}
	if got := TokenHex("bg-neon-900"); got != TokenHex("bg-gray-600") {
		t.Errorf("unknown tokens should fall back to gray, got %q", got)
	}
}

func TestRenderColumnChip(t *testing.T) {
	t.Parallel()

	reserved := RenderColumnChip(models.Column{Name: "todo", Color: "bg-gray-600"})
	if !strings.Contains(reserved, "● todo") || !strings.Contains(reserved, "(reserved)") {
		t.Errorf("reserved chip = %q", reserved)
	}

	custom := RenderColumnChip(models.Column{Name: "blocked", Color: "bg-teal-600"})
	if !strings.Contains(custom, "● blocked") || strings.Contains(custom, "(reserved)") {
		t.Errorf("custom chip = %q", custom)
	}
}
