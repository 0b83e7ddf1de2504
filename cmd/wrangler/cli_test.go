package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateCommandRegistered(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "rotate" {
			found = true
		}
	}
	assert.True(t, found, "rotate command should be registered")
}

func TestRotateCommandFlags(t *testing.T) {
	for _, name := range []string{"input", "output", "pattern", "basis", "standard-vul"} {
		require.NotNil(t, rotateCmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
