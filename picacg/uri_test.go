package picacg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeURI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "comics?page=1&s=ua", "comics?page=1&s=ua"},
		{"non-ascii query", "comics?c=純愛&s=ua&page=1", "comics?c=%E7%B4%94%E6%84%9B&s=ua&page=1"},
		{"space is %20", "comics?t=tag a", "comics?t=tag%20a"},
		{"space in path", "/p/a b", "/p/a%20b"},
		{"valid escape kept", "a%2Fb?x=%41", "a%2Fb?x=%41"},
		{"stray percent", "a%zz?x=100%", "a%25zz?x=100%25"},
		{"separators kept", "/comics/c1/eps?k=v&k2=v=2", "/comics/c1/eps?k=v&k2=v=2"},
		{"second question mark stays in query", "a?b?c", "a?b?c"},
		{"quote and hash in query", "x?q='a'#b", "x?q=%27a%27%23b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeURI(tt.in))
		})
	}
}
