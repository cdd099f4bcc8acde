package asset

import (
	"strings"
	"testing"
)

func TestCatalogGeometry(t *testing.T) {
	tests := []struct {
		sprite        *Sprite
		width, height int
		offset        int
	}{
		{Tree, 27, 11, 12},
		{Snowman, 9, 4, 4},
		{House, 14, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.sprite.Kind.String(), func(t *testing.T) {
			s := tt.sprite
			if s.Width != tt.width || s.Height != tt.height {
				t.Errorf("Got %dx%d, want %dx%d", s.Width, s.Height, tt.width, tt.height)
			}
			if s.Offset != tt.offset {
				t.Errorf("Got offset %d, want %d", s.Offset, tt.offset)
			}
			if s.ContactRow != 0 {
				t.Errorf("Bottom row should touch the ground, got contact row %d", s.ContactRow)
			}
			for i, row := range s.Rows {
				if len(row) != s.Width {
					t.Errorf("Row %d has %d cells, want %d", i, len(row), s.Width)
				}
			}
		})
	}
}

func TestLoadPaddingTransparent(t *testing.T) {
	s, err := Load(KindSnowman, "  ab  c \nxyz", -1)
	if err != nil {
		t.Fatal(err)
	}

	want := []rune{Transparent, Transparent, 'a', 'b', ' ', ' ', 'c', Transparent}
	for i, r := range want {
		if s.Rows[0][i] != r {
			t.Errorf("Row 0 col %d = %q, want %q", i, s.Rows[0][i], r)
		}
	}

	// Short rows are padded out to the widest row
	for i := 3; i < s.Width; i++ {
		if s.Rows[1][i] != Transparent {
			t.Errorf("Row 1 col %d should be padding, got %q", i, s.Rows[1][i])
		}
	}
}

func TestLoadContactRowDerived(t *testing.T) {
	// Bottom row is short: anchor column 2 hangs one row low, column 4 two rows
	art := strings.Join([]string{
		"#####",
		"#####",
		"###",
		"##",
	}, "\n")

	s, err := Load(KindHouse, art, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.ContactRow != 1 {
		t.Errorf("Got contact row %d, want 1", s.ContactRow)
	}

	s, err = Load(KindHouse, art, 4)
	if err != nil {
		t.Fatal(err)
	}
	if s.ContactRow != 2 {
		t.Errorf("Got contact row %d, want 2", s.ContactRow)
	}
}

func TestLoadRejects(t *testing.T) {
	if _, err := Load(KindTree, "\n\n", -1); err == nil {
		t.Error("Expected error for empty art")
	}
	if _, err := Load(KindTree, "ab", 5); err == nil {
		t.Error("Expected error for offset outside width")
	}
	if _, err := Load(KindTree, "a漢b", -1); err == nil {
		t.Error("Expected error for double-width rune")
	}
}

func TestCellOutOfRange(t *testing.T) {
	if House.Cell(-1, 0) != Transparent || House.Cell(0, House.Height) != Transparent {
		t.Error("Out-of-range cells must be transparent")
	}
	if House.Cell(0, House.Height-1) != '@' {
		t.Errorf("Unexpected bottom-left glyph %q", House.Cell(0, House.Height-1))
	}
}
