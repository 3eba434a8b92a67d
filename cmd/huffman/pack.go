package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NovaliX-Dev/huffman-format/huffman"
)

var packCmd = &cobra.Command{
	Use:   "pack <input>",
	Short: "Compress a file with static Huffman coding",
	Args:  cobra.ExactArgs(1),
	RunE:  runPack,
}

func runPack(cmd *cobra.Command, args []string) (err error) {
	in := parseInputArg(args[0])
	if in.isStdin() {
		return errPackFromStdin
	}

	out, err := resolveOutput(outputFlag, in, true)
	if err != nil {
		return err
	}

	log.Infof("opening %q...", in)
	src, err := in.openSeekable()
	if err != nil {
		return fmt.Errorf("failed to open the input file: %w", err)
	}
	defer src.Close()

	table, err := huffman.BuildFreqTable(src)
	if err != nil {
		return fmt.Errorf("failed to scan the input file: %w", err)
	}
	log.Infof("file info: size=%d bytes, entropy=%.4f bits/symbol", table.Total(), table.Entropy())

	if _, err := src.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind the input file: %w", err)
	}

	log.Infof("writing to %q...", out)
	dst, err := out.open(overwriteFlag)
	if err != nil {
		return fmt.Errorf("failed to create the output file: %w", err)
	}

	n, packErr := huffman.PackWithTable(table, src, dst)
	closeErr := dst.Close()

	if packErr != nil {
		if delErr := out.delete(); delErr != nil {
			log.Errorf("failed to remove the partial output file: %v", delErr)
		}
		return fmt.Errorf("failed to pack the input file: %w", packErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close the output file: %w", closeErr)
	}

	log.Infof("wrote %d bytes", n)
	return nil
}
