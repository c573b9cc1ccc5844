package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tc := range tests {
		if got := IsTooSmall(tc.w, tc.h); got != tc.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}

func TestContentHeight_MatchesRenderedChrome(t *testing.T) {
	header := RenderHeader("Practice", "Score 0/5", 100)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Back"}}, 100)
	want := 40 - lipgloss.Height(header) - lipgloss.Height(footer)
	if got := ContentHeight(40); got != want {
		t.Errorf("ContentHeight(40) = %d, want %d", got, want)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Practice", "Score 2/5", 100)
	if !strings.Contains(h, "Ratio Lab") {
		t.Error("header missing app name")
	}
	if !strings.Contains(h, "Practice") || !strings.Contains(h, "Score 2/5") {
		t.Error("header missing title or status")
	}
	if lipgloss.Height(h) != HeaderHeight {
		t.Errorf("header height = %d, want %d", lipgloss.Height(h), HeaderHeight)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Submit") {
		t.Error("footer missing hint")
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
