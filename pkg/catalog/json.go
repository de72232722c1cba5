package catalog

import (
	"errors"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("parse JSON catalog: invalid JSON")

// parseJSON uses gjson so object member order is kept.
func parseJSON(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("parse JSON catalog: root must be an object")
	}

	var entries []Entry
	collectJSON(root, "", &entries)
	return entries, nil
}

func collectJSON(obj gjson.Result, prefix string, entries *[]Entry) {
	obj.ForEach(func(key, value gjson.Result) bool {
		path := joinKey(prefix, key.String())
		switch {
		case value.IsObject():
			collectJSON(value, path, entries)
		case value.Type == gjson.String:
			*entries = append(*entries, Entry{Key: path, Message: value.String()})
		}
		return true
	})
}
