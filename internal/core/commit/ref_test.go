package commit

import (
	"reflect"
	"testing"
)

func TestIsHashRef(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{ref: "abc1", want: true},
		{ref: "ABC123def", want: true},
		{ref: "0123456789abcdef0123456789abcdef01234567", want: true},
		{ref: "abc", want: false},
		{ref: "HEAD", want: false},
		{ref: "feature/x", want: false},
		{ref: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := IsHashRef(tt.ref); got != tt.want {
				t.Errorf("IsHashRef(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestCollectRefs(t *testing.T) {
	got := CollectRefs(
		[]string{"aaa111", "bbb222"},
		[]string{"ccc333", "AAA111"},
		[]string{"bbb222", "", "ddd444"},
	)
	want := []string{"aaa111", "bbb222", "ccc333", "ddd444"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectRefs = %v, want %v", got, want)
	}
}

func TestShortAndSummary(t *testing.T) {
	if got := Short("9fceb02d0ae598e9"); got != "9fceb02d" {
		t.Errorf("Short = %q", got)
	}
	if got := Short("abc"); got != "abc" {
		t.Errorf("Short(short) = %q", got)
	}
	if got := Summary("\n  Add parser  \n\nLonger body"); got != "Add parser" {
		t.Errorf("Summary = %q", got)
	}
}
