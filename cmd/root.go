package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mudhumeni",
	Short: "Agricultural advisory assistant for Zimbabwean farmers",
	Long: `Mudhumeni answers farming questions in English, Shona and Ndebele.
It combines a remote chat model with a built-in knowledge base covering
crops, livestock, soil and irrigation, so farmers get a useful answer
even when the model is unreachable.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".mudhumeni.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
