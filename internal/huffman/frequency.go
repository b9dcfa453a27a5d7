package huffman

// FrequencyTable maps each symbol to its occurrence count.
type FrequencyTable map[byte]int

// CountFrequencies scans data once and returns the occurrence count of every
// symbol. Empty input yields an empty table.
func CountFrequencies(data []byte) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}
