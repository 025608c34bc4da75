package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/count/internal/drill"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the stored score and language",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		state, err := drill.Restore(cmd.Context(), st.Settings())
		if err != nil {
			return fmt.Errorf("read settings: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "correct:  %d\n", state.Correct)
		fmt.Fprintf(out, "language: %s\n", state.Language.Token())
		return nil
	},
}
