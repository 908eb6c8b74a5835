package ansiart

import (
	"reflect"
	"testing"
)

func TestAttrApply(t *testing.T) {
	tests := []struct {
		name   string
		start  Attr
		params string
		want   Attr
	}{
		{"empty resets", Attr{FG: 31, BG: 44, Bold: true}, "", DefaultAttr},
		{"bold cyan", DefaultAttr, "1;36", Attr{FG: 36, BG: -1, Bold: true}},
		{"bright colors", DefaultAttr, "97;104", Attr{FG: 97, BG: 104}},
		{"reset inside list", Attr{FG: 31, BG: -1}, "0;5", Attr{FG: -1, BG: -1, Blink: true}},
		{"normal intensity", Attr{FG: 31, BG: -1, Bold: true, Faint: true}, "22", Attr{FG: 31, BG: -1}},
		{"default colors", Attr{FG: 31, BG: 41}, "39;49", DefaultAttr},
		{"ignored codes", DefaultAttr, "4;7;38", DefaultAttr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.start
			a.Apply(tt.params)
			if a != tt.want {
				t.Errorf("Apply(%q) = %+v, want %+v", tt.params, a, tt.want)
			}
		})
	}
}

func TestPaletteIndexes(t *testing.T) {
	tests := []struct {
		attr   Attr
		ice    bool
		fg, bg int
	}{
		{DefaultAttr, false, -1, -1},
		{Attr{FG: 30, BG: 40}, false, 0, 0},
		{Attr{FG: 37, BG: 47, Bold: true}, false, 15, 7},
		{Attr{FG: 91, BG: 101}, false, 9, 9},
		{Attr{FG: 32, BG: 42, Blink: true}, true, 2, 10},
		{Attr{FG: 32, BG: 42, Blink: true}, false, 2, 2},
	}
	for _, tt := range tests {
		if fg := tt.attr.ColorIndex(); fg != tt.fg {
			t.Errorf("%+v ColorIndex() = %d, want %d", tt.attr, fg, tt.fg)
		}
		if bg := tt.attr.BackgroundIndex(tt.ice); bg != tt.bg {
			t.Errorf("%+v BackgroundIndex(%v) = %d, want %d", tt.attr, tt.ice, bg, tt.bg)
		}
	}
}

func TestSplitParams(t *testing.T) {
	got := splitParams("1;;300;36")
	if want := []int{1, 0, 36}; !reflect.DeepEqual(got, want) {
		t.Errorf("splitParams() = %v, want %v", got, want)
	}
}
