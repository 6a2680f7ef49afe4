package storage

import "strings"

// ListDelimiter joins mood tags and activities into their single stored
// column. Values containing it are rejected at validation time, which is
// what keeps the encoding lossless.
const ListDelimiter = ","

// EncodeList serializes list members into the delimited column form.
func EncodeList(items []string) string {
	return strings.Join(items, ListDelimiter)
}

// DecodeList is the inverse of EncodeList: split on the delimiter, trim each
// segment, drop empties. An empty column decodes to nil.
func DecodeList(column string) []string {
	var items []string
	for _, part := range strings.Split(column, ListDelimiter) {
		item := strings.TrimSpace(part)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
