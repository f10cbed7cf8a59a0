package safety

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options carries the flags that gate destructive batches.
type Options struct {
	// DryRun means no changes should be made at all.
	DryRun bool
	// Yes answers every prompt affirmatively without asking.
	Yes bool
}

// Confirm prompts the user to confirm a destructive action.
// With opts.Yes it returns true without prompting; with opts.DryRun it
// returns false with no error (nothing should happen). Otherwise it
// asks question on out and reads a y/yes answer from in. The caller
// decides what to do with the result.
func Confirm(opts Options, in io.Reader, out io.Writer, question string) (bool, error) {
	if opts.DryRun {
		return false, nil
	}
	if opts.Yes {
		return true, nil
	}
	if out != nil {
		fmt.Fprintf(out, "%s [y/N]: ", strings.TrimSpace(question))
	}
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	ans := strings.TrimSpace(strings.ToLower(line))
	return ans == "y" || ans == "yes", nil
}
