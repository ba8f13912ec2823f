package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashCommand(t *testing.T) {
	t.Run("ValidInput", func(t *testing.T) {
		cmd := NewHashCommand()
		cmd.SetArgs([]string{"1", "2", "3"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("RejectsNonNumeric", func(t *testing.T) {
		cmd := NewHashCommand()
		cmd.SetArgs([]string{"abc"})
		require.Error(t, cmd.Execute())
	})

	t.Run("RejectsOutOfField", func(t *testing.T) {
		cmd := NewHashCommand()
		cmd.SetArgs([]string{"18446744069414584321"})
		require.Error(t, cmd.Execute())
	})
}

func TestFFTCommand(t *testing.T) {
	t.Run("PowerOfTwo", func(t *testing.T) {
		cmd := NewFFTCommand()
		cmd.SetArgs([]string{"5", "2", "0", "1"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("RejectsBadLength", func(t *testing.T) {
		cmd := NewFFTCommand()
		cmd.SetArgs([]string{"1", "2", "3"})
		require.Error(t, cmd.Execute())
	})

	t.Run("InverseAndOffsetConflict", func(t *testing.T) {
		cmd := NewFFTCommand()
		cmd.SetArgs([]string{"--inverse", "--offset", "7", "1", "2"})
		require.Error(t, cmd.Execute())
	})
}
