package fsutil

// IsBinaryContent checks if content bytes contain binary data by looking for
// null bytes in the first sampleSize bytes. UTF-16 and UTF-32 BOMs are
// handled specially to avoid false positives.
func IsBinaryContent(content []byte, sampleSize int) bool {
	// Check for common text file BOMs (UTF-16, UTF-32)
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) ||
			(content[0] == 0xFE && content[1] == 0xFF) {
			return false // UTF-16 BOM - treat as text, skip null check
		}
	}
	if len(content) >= 4 {
		if (content[0] == 0xFF && content[1] == 0xFE && content[2] == 0x00 && content[3] == 0x00) ||
			(content[0] == 0x00 && content[1] == 0x00 && content[2] == 0xFE && content[3] == 0xFF) {
			return false // UTF-32 BOM - treat as text, skip null check
		}
	}

	sample := min(len(content), sampleSize)
	for i := range sample {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
