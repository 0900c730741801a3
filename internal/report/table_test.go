package report

import "testing"

func TestDotPad(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{label: "Rent", width: 10, want: "Rent......"},
		{label: "Maintenance", width: 5, want: "Maintenance"},
		{label: "", width: 3, want: "..."},
		{label: "Rent ₹", width: 9, want: "Rent ₹..."},
	}
	for _, tt := range tests {
		if got := dotPad(tt.label, tt.width); got != tt.want {
			t.Fatalf("dotPad(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
	}
}

func TestSeparator(t *testing.T) {
	if got := separator('-'); len(got) != separatorWidth {
		t.Fatalf("expected %d dashes, got %d", separatorWidth, len(got))
	}
}
