package ripemd160

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	require.NoError(t, Version.Validate())
	require.NotEqual(t, "0.0.0", Version.String())
}
