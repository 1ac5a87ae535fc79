package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/pantry/internal/listclean"
	"github.com/tayloree/pantry/internal/source"
	"github.com/tayloree/pantry/internal/validation"
)

func TestShouldAutoJSON(t *testing.T) {
	assert.True(t, shouldAutoJSON([]string{"suggest", "--items", "list.json"}, false))
	assert.False(t, shouldAutoJSON([]string{"suggest", "--items", "list.json", "--json"}, false))
	assert.False(t, shouldAutoJSON([]string{"completion", "zsh"}, false))
	assert.False(t, shouldAutoJSON([]string{"--help"}, false))
	assert.False(t, shouldAutoJSON([]string{"suggest", "--items", "list.json"}, true))
}

func TestFirstCommand_SkipsFlagValues(t *testing.T) {
	assert.Equal(t, "aisles", firstCommand([]string{"--items", "list.json", "aisles"}))
	assert.Equal(t, "recommend", firstCommand([]string{"-c", "pool.json", "recommend"}))
	assert.Equal(t, "", firstCommand([]string{"--json"}))
}

func TestPrintQuickStart_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := printQuickStart(&buf, true)
	require.NoError(t, err)

	var payload quickStartJSON
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	assert.Equal(t, "pantry", payload.Name)
	assert.NotEmpty(t, payload.Usage)
	assert.Len(t, payload.Examples, 3)
}

func TestPrintCLIErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printCLIErrorJSON(&buf, classifyCLIError(invalidArgsError("bad flag", "pantry suggest --items list.json")))
	require.NoError(t, err)

	var payload map[string]any
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	errorObject, ok := payload["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ARGS", errorObject["code"])
	assert.Equal(t, "bad flag", errorObject["message"])
	assert.Equal(t, float64(ExitInvalidArgs), errorObject["exitCode"])
}

func TestClassifyCLIError_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		exit int
	}{
		{"nothing to merge", fmt.Errorf("merging: %w", listclean.ErrNothingToMerge), "NOT_FOUND", ExitNotFound},
		{"store not found", fmt.Errorf("fetching list items: %w", source.ErrNotFound), "NOT_FOUND", ExitNotFound},
		{"status", &source.StatusError{StatusCode: 502, URL: "http://store/candidates"}, "UPSTREAM_ERROR", ExitUpstream},
		{"arg count", errors.New("accepts 1 arg(s), received 0"), "INVALID_ARGS", ExitInvalidArgs},
		{"other", errors.New("boom"), "INTERNAL_ERROR", ExitInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyCLIError(tt.err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.exit, got.ExitCode)
		})
	}
}

func TestStoreAndSnapshotErrors(t *testing.T) {
	notFound := classifyCLIError(storeError("fetching list", fmt.Errorf("x: %w", source.ErrNotFound)))
	assert.Equal(t, ExitNotFound, notFound.ExitCode)

	upstream := classifyCLIError(storeError("fetching list", errors.New("executing request: refused")))
	assert.Equal(t, ExitUpstream, upstream.ExitCode)

	invalid := classifyCLIError(snapshotError("reading list", &validation.Error{}))
	assert.Equal(t, ExitInvalidArgs, invalid.ExitCode)
	assert.Contains(t, invalid.Suggestions, "Fix the listed fields and retry.")
}
