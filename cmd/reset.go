package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/count/internal/drill"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the stored score",
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

		keys := []string{drill.KeyCorrect}
		if all, _ := cmd.Flags().GetBool("all"); all {
			keys = append(keys, drill.KeyLanguage)
		}

		for _, key := range keys {
			if err := st.Settings().Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "reset:", keys)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also forget the chosen language")
}
