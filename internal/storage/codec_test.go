package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/storage"
)

func TestListCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		items []string
	}{
		{name: "single", items: []string{"calm"}},
		{name: "several", items: []string{"jogging", "reading", "cooking"}},
		{name: "inner spaces kept", items: []string{"deep breathing", "cold shower"}},
		{name: "duplicates kept", items: []string{"reading", "reading"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column := storage.EncodeList(tt.items)
			got := storage.DecodeList(column)
			require.Equal(t, tt.items, got)
		})
	}
}

func TestEncodeListEmpty(t *testing.T) {
	assert.Equal(t, "", storage.EncodeList(nil))
	assert.Equal(t, "", storage.EncodeList([]string{}))
}

func TestDecodeList(t *testing.T) {
	assert.Nil(t, storage.DecodeList(""))
	assert.Nil(t, storage.DecodeList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, storage.DecodeList(" a , b "),
		"segments are trimmed")
}
