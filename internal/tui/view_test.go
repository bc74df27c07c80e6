package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		if got := truncate("report", 10); got != "report" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("long strings gain an ellipsis", func(t *testing.T) {
		if got := truncate("quarterly report", 10); got != "quarter..." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("multibyte titles are never cut mid-rune", func(t *testing.T) {
		titles := []string{
			"सुरक्षा परिपत्र बारह",
			"സുരക്ഷാ സർക്കുലർ",
			"データ分析レポート",
		}
		for _, title := range titles {
			for n := 1; n <= 12; n++ {
				got := truncate(title, n)
				if !utf8.ValidString(got) {
					t.Errorf("truncate(%q, %d) = %q is not valid UTF-8", title, n, got)
				}
				if w := runewidth.StringWidth(got); w > n {
					t.Errorf("truncate(%q, %d) renders %d cells wide", title, n, w)
				}
			}
		}
	})
}
