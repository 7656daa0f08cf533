package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_itemWindow(t *testing.T) {
	prog, err := Parse("e1 1 a s m d t i c o q n l h y v p k r")
	require.NoError(t, err)

	w := itemWindow(prog, 0)
	assert.Contains(t, w, "->e<-")

	w = itemWindow(prog, len(prog)-1)
	assert.Contains(t, w, "->r<-")
	assert.NotContains(t, w, "<end>")

	w = itemWindow(prog, len(prog))
	assert.Contains(t, w, "-><end><-")
}

func Test_programError_includes_item_window(t *testing.T) {
	_, err := runSource(t, "e4 0 d", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "->d<-", "a runtime error must render the ip-context window, not just the bare failing Item")
}
