// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/form"
)

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "algokit",
		Short: "Text and numeric utility cards",
	}
	rootCommand.SilenceUsage = true
	rootCommand.AddCommand(newListCommand())
	for _, card := range form.Cards() {
		rootCommand.AddCommand(newCardCommand(card))
	}
	return rootCommand
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, card := range form.Cards() {
				if _, writeError := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", card.Name, card.Title); writeError != nil {
					return fmt.Errorf("write card list: %w", writeError)
				}
			}
			return nil
		},
	}
}

// newCardCommand disables flag parsing so negative numbers such as "-3"
// reach the card as input. A lone -h/--help still prints usage, and a
// leading "--" is dropped so "reverse -- -h" reverses "-h".
func newCardCommand(card form.Card) *cobra.Command {
	return &cobra.Command{
		Use:                card.Name + " [input...]",
		Short:              card.Title,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && isHelpArg(args[0]) {
				return cmd.Help()
			}
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			rawInput, readError := readCardInput(cmd, args)
			if readError != nil {
				return fmt.Errorf("read %s input: %w", card.Name, readError)
			}
			if _, writeError := fmt.Fprintln(cmd.OutOrStdout(), card.Handle(rawInput)); writeError != nil {
				return fmt.Errorf("write %s output: %w", card.Name, writeError)
			}
			return nil
		},
	}
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func readCardInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	inputBytes, readError := io.ReadAll(cmd.InOrStdin())
	if readError != nil {
		return "", readError
	}
	return string(inputBytes), nil
}
