package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fingerdex",
	Short: "Piano fingering prediction",
	Long:  `Predicts a fingering (1-5) for every note in a passage, one note at a time per hand.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
