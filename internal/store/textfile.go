package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// TrimCopy copies src to dst line by line, trimming leading and trailing
// whitespace from every line. Each output line is newline-terminated.
// Both files are closed before the function returns on every path.
func TrimCopy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if _, err := w.WriteString(strings.TrimSpace(scanner.Text()) + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", src, err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", dst, err)
	}

	return nil
}
