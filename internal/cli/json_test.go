package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfetch/vfetch/internal/errors"
)

func TestWriteJSONSuccess(t *testing.T) {
	var buf bytes.Buffer

	data := struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Items []string `json:"items"`
	}{
		Name:  "os",
		Count: 2,
		Items: []string{"a", "b"},
	}
	require.NoError(t, WriteJSONSuccess(&buf, data))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "os", dataMap["name"])
	assert.Equal(t, float64(2), dataMap["count"]) // JSON numbers are float64
}

func TestWriteJSONSuccess_NilData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, nil))
	assert.NotContains(t, buf.String(), `"data"`)
}

func TestWriteJSONFromError_StructuredError(t *testing.T) {
	var buf bytes.Buffer

	err := errors.New(errors.ErrASCII, "Can't read ascii image", "Check asciiImage")
	require.NoError(t, WriteJSONFromError(&buf, err))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeASCIIFailed, env.Error.Code)
	assert.Equal(t, "Can't read ascii image", env.Error.Message)
	assert.Equal(t, "Check asciiImage", env.Error.Suggestion)
}

func TestErrorToJSON_NilReturnsNil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}

func TestErrorToJSON_GenericError(t *testing.T) {
	result := ErrorToJSON(fmt.Errorf("something went wrong"))
	require.NotNil(t, result)
	assert.Equal(t, ErrCodeUnknown, result.Code)
	assert.Equal(t, "something went wrong", result.Message)
}

func TestErrorToJSON_WrappedStructuredError(t *testing.T) {
	inner := errors.New(errors.ErrRender, "Failed to draw", "")
	result := ErrorToJSON(fmt.Errorf("fetch: %w", inner))

	require.NotNil(t, result)
	assert.Equal(t, ErrCodeRenderFailed, result.Code)
}

func TestErrorToJSON_AllInternalErrorCodes(t *testing.T) {
	tests := []struct {
		code    string
		message string
		want    string
	}{
		{errors.ErrConfig, "Config file not found", ErrCodeConfigNotFound},
		{errors.ErrConfig, "colorIndex 42 is out of range", ErrCodeConfigInvalid},
		{errors.ErrASCII, "Can't read art", ErrCodeASCIIFailed},
		{errors.ErrProbe, "Kernel unavailable", ErrCodeProbeFailed},
		{errors.ErrRender, "Write failed", ErrCodeRenderFailed},
		{"OTHER", "Unknown", ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.want, func(t *testing.T) {
			result := ErrorToJSON(errors.New(tt.code, tt.message, ""))
			assert.Equal(t, tt.want, result.Code)
		})
	}
}
