// Package plistutil provides utilities for working with property list data
package plistutil

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/deploymenttheory/go-icns/internal/common/errors"
	"howett.net/plist"
)

// DecodeBytes decodes property list data (binary or XML) into a map
func DecodeBytes(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	decoder := plist.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
	}
	return result, nil
}

// TopLevelKeys returns the sorted top-level keys of a decoded plist,
// for compact logging of embedded dictionaries
func TopLevelKeys(data []byte) ([]string, error) {
	dict, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
