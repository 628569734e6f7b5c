package main

import (
	"fmt"

	"deckview/internal/deck"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var embedded bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the slides of the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if embedded {
				for _, name := range deck.EmbeddedNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "embedded:%s\n", name)
				}
				return nil
			}
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			d, err := loadDeck(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d.Title())
			for i, s := range d.All() {
				fmt.Fprintf(out, "%02d  %-7s  %s\n", i+1, s.Kind, s.Title)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&embedded, "embedded", false, "list the decks built into the binary instead")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			d, err := loadDeck(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d slides ok\n", d.Title(), d.Len())
			return nil
		},
	}
}
