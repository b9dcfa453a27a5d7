// Command huffman compresses and decompresses files with the Huffman codec.
//
//	huffman [-stats] [-tree] [-o output] input      compress input to input.hc
//	huffman -d [-stats] [-o output] input.hc        restore the original file
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/bitpack/huffman-compression-service/internal/compression"
	"github.com/bitpack/huffman-compression-service/internal/huffman"
)

const packedExtension = ".hc"

func main() {
	var (
		decompress = flag.Bool("d", false, "decompress instead of compress")
		output     = flag.String("o", "", "output file (default: input plus/minus "+packedExtension+")")
		showStats  = flag.Bool("stats", false, "print compression statistics")
		showTree   = flag.Bool("tree", false, "print the Huffman tree and code table (compress only)")
		quiet      = flag.Bool("q", false, "suppress the progress bar")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: huffman [-d] [-stats] [-tree] [-q] [-o output] input")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, *decompress, *showStats, *showTree, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, "huffman:", err)
		os.Exit(1)
	}
}

func run(input, output string, decompress, showStats, showTree, quiet bool) error {
	data, err := readFile(input, quiet)
	if err != nil {
		return err
	}

	if decompress {
		restored, stats, err := compression.Decompress(data)
		if err != nil {
			return err
		}
		if output == "" {
			output = restoredName(input)
		}
		if err := os.WriteFile(output, restored, 0o644); err != nil {
			return err
		}
		if showStats {
			printStats(stats.ProcessedSize, stats.OriginalSize)
		}
		fmt.Printf("decompressed %s -> %s (%d bytes)\n", input, output, len(restored))
		return nil
	}

	compressed, stats, err := compression.Compress(data)
	if err != nil {
		return err
	}
	if output == "" {
		output = input + packedExtension
	}
	if err := os.WriteFile(output, compressed, 0o644); err != nil {
		return err
	}
	if showTree {
		if err := printTree(data); err != nil {
			return err
		}
	}
	if showStats {
		printStats(stats.OriginalSize, stats.ProcessedSize)
	}
	fmt.Printf("compressed %s -> %s (%d -> %d bytes)\n", input, output, stats.OriginalSize, stats.ProcessedSize)
	return nil
}

// readFile reads the whole input behind a progress bar so large files show
// activity.
func readFile(path string, quiet bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	var r io.Reader = f
	var bar *pb.ProgressBar
	if !quiet {
		bar = pb.Full.Start64(info.Size())
		r = bar.NewProxyReader(f)
	}
	data, err := io.ReadAll(r)
	if bar != nil {
		bar.Finish()
	}
	return data, err
}

func restoredName(input string) string {
	if strings.HasSuffix(input, packedExtension) {
		return strings.TrimSuffix(input, packedExtension)
	}
	return input + ".out"
}

func printStats(originalSize, compressedSize int) {
	fmt.Println("\nCompression Statistics:")
	fmt.Printf("Original size: %d bytes (%d bits)\n", originalSize, originalSize*8)
	fmt.Printf("Compressed size: %d bytes (%d bits)\n", compressedSize, compressedSize*8)
	if compressedSize > 0 {
		ratio := float64(originalSize) / float64(compressedSize)
		saved := float64(originalSize-compressedSize) / float64(originalSize) * 100
		fmt.Printf("Compression ratio: %.2fx\n", ratio)
		fmt.Printf("Space saved: %.2f%%\n", saved)
	}
}

// printTree rebuilds the tree and code table for the input and renders both.
// The tree is the codec's own: same frequencies, same tie-break.
func printTree(data []byte) error {
	root, err := huffman.BuildTree(huffman.CountFrequencies(data))
	if err != nil {
		return err
	}

	fmt.Println("\nHuffman Tree Structure:")
	huffman.DumpTree(os.Stdout, root)

	fmt.Println("\nHuffman Codes (sorted by code length):")
	huffman.GenerateCodes(root).Dump(os.Stdout)
	return nil
}
