// Command huffman packs and unpacks files using the static Huffman
// codec implemented in the huffman package.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
