package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "securereq",
	Short: "Security requirements generator for user stories",
	Long: `SecureReq turns software user stories into structured security analyses:
abuse cases, STRIDE threats, prioritized security requirements and
compliance mappings against built-in and custom standards.`,
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
