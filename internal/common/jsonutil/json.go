package jsonutil

import (
	"encoding/json"
	"fmt"

	"github.com/deploymenttheory/go-icns/internal/common/errors"
	"github.com/deploymenttheory/go-icns/internal/common/fsutil"
)

// Marshal renders a value as indented JSON
func Marshal(data interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}
	return out, nil
}

// WriteJSONFile writes a value to a JSON file with indentation
func WriteJSONFile(path string, data interface{}) error {
	out, err := Marshal(data)
	if err != nil {
		return err
	}
	return fsutil.WriteFile(path, out, 0644)
}
