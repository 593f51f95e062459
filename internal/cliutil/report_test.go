package cliutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJSONIndents(t *testing.T) {
	out, err := PrettyJSON(struct {
		Name   string `json:"name"`
		Frames int    `json:"frames"`
	}{Name: "a.gif", Frames: 3})
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.Contains(s, "\n"))
	assert.True(t, strings.Contains(s, "\"name\""))
	assert.True(t, strings.Contains(s, "a.gif"))
}
