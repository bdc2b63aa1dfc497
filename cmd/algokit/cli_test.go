package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/form"
)

func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCommand := newRootCommand()
	var commandOutput bytes.Buffer
	rootCommand.SetOut(&commandOutput)
	rootCommand.SetErr(&commandOutput)
	rootCommand.SetIn(strings.NewReader(stdin))
	rootCommand.SetArgs(args)
	executeError := rootCommand.Execute()
	return commandOutput.String(), executeError
}

func TestCardCommandsRenderHandlerOutput(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"reverse", "hello", "world"}, "dlrow olleh\n"},
		{[]string{"palindrome", "A man, a plan, a canal: Panama"}, form.MsgPalindrome + "\n"},
		{[]string{"max-csv", "3,", "7,", "two,", "5"}, "7\n"},
		{[]string{"vowels", "Programming"}, "3\n"},
		{[]string{"factorial", "20"}, "2432902008176640000\n"},
		{[]string{"fibonacci", "10"}, "55\n"},
		{[]string{"sum-to-n", "5"}, "15\n"},
		{[]string{"even-odd", "-3"}, "Odd\n"},
		{[]string{"factorial", "-1"}, form.MsgNonNegative + "\n"},
		{[]string{"fibonacci", "ten"}, form.MsgInvalidNumber + "\n"},
	}
	for _, tc := range cases {
		output, executeError := executeRoot(t, "", tc.args...)
		require.NoError(t, executeError, "args %v", tc.args)
		assert.Equal(t, tc.want, output, "args %v", tc.args)
	}
}

func TestCardCommandReadsStdinWithoutArgs(t *testing.T) {
	output, executeError := executeRoot(t, "  racecar\n", "palindrome")
	require.NoError(t, executeError)
	assert.Equal(t, form.MsgPalindrome+"\n", output)

	output, executeError = executeRoot(t, "", "reverse")
	require.NoError(t, executeError)
	assert.Equal(t, form.MsgEnterText+"\n", output)
}

func TestCardCommandPrintsUsageForHelpArg(t *testing.T) {
	for _, helpArg := range []string{"--help", "-h"} {
		output, executeError := executeRoot(t, "", "factorial", helpArg)
		require.NoError(t, executeError, "arg %q", helpArg)
		assert.Contains(t, output, "Usage:", "arg %q", helpArg)
		assert.Contains(t, output, "algokit factorial [input...]", "arg %q", helpArg)
		assert.NotContains(t, output, form.MsgInvalidNumber, "arg %q", helpArg)
	}
}

func TestCardCommandDropsLeadingSeparator(t *testing.T) {
	output, executeError := executeRoot(t, "", "reverse", "--", "-x")
	require.NoError(t, executeError)
	assert.Equal(t, "x-\n", output)

	output, executeError = executeRoot(t, "", "reverse", "--", "-h")
	require.NoError(t, executeError)
	assert.Equal(t, "h-\n", output)

	output, executeError = executeRoot(t, "", "reverse", "hello", "-h")
	require.NoError(t, executeError)
	assert.Equal(t, "h- olleh\n", output)
}

func TestListCommandPrintsEveryCard(t *testing.T) {
	output, executeError := executeRoot(t, "", "list")
	require.NoError(t, executeError)

	outputLines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, outputLines, len(form.Cards()))
	for i, card := range form.Cards() {
		assert.True(t, strings.HasPrefix(outputLines[i], card.Name), "line %q", outputLines[i])
		assert.True(t, strings.HasSuffix(outputLines[i], card.Title), "line %q", outputLines[i])
	}
}

func TestUnknownCommandFails(t *testing.T) {
	_, executeError := executeRoot(t, "", "square-root", "9")
	assert.Error(t, executeError)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }

func TestCardCommandPropagatesReadError(t *testing.T) {
	rootCommand := newRootCommand()
	rootCommand.SetOut(&bytes.Buffer{})
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetIn(failingReader{})
	rootCommand.SetArgs([]string{"vowels"})

	executeError := rootCommand.Execute()
	require.Error(t, executeError)
	assert.Contains(t, executeError.Error(), "read vowels input")
}

func TestRunReturnsExitCode(t *testing.T) {
	assert.Equal(t, 0, run([]string{"list"}))
	assert.Equal(t, exitCodeFailure, run([]string{"square-root", "9"}))
}
