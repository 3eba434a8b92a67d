package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	outputFlag    string
	overwriteFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "huffman",
	Short:         "Pack and unpack files with static Huffman coding",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   isTerminalFd(os.Stdout.Fd()),
		FullTimestamp: false,
	})

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "",
		`output path, or "-" for stdout`)
	rootCmd.PersistentFlags().BoolVarP(&overwriteFlag, "overwrite", "W", false,
		"overwrite the output file if it already exists")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
}

// Execute runs the root command, logging and returning any failure. It
// does not touch output files itself: the pack and unpack commands remove
// a partially written output file when their codec call fails.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		return err
	}
	return nil
}
