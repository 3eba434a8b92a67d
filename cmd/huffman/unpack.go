package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NovaliX-Dev/huffman-format/huffman"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <input>",
	Short: "Decompress a file packed by the pack subcommand",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnpack,
}

func runUnpack(cmd *cobra.Command, args []string) error {
	in := parseInputArg(args[0])

	out, err := resolveOutput(outputFlag, in, false)
	if err != nil {
		return err
	}

	log.Infof("opening %q...", in)
	src, err := in.openStream()
	if err != nil {
		return fmt.Errorf("failed to open the input file: %w", err)
	}
	defer src.Close()

	log.Infof("writing to %q...", out)
	dst, err := out.open(overwriteFlag)
	if err != nil {
		return fmt.Errorf("failed to create the output file: %w", err)
	}

	n, unpackErr := huffman.Unpack(src, dst)
	closeErr := dst.Close()

	if unpackErr != nil {
		if delErr := out.delete(); delErr != nil {
			log.Errorf("failed to remove the partial output file: %v", delErr)
		}
		return fmt.Errorf("failed to unpack the input: %w", unpackErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close the output file: %w", closeErr)
	}

	log.Infof("wrote %d bytes", n)
	return nil
}
