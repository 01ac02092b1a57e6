package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// confirm asks a yes/no question on out and reads the answer from in.
// Only "y" or "yes" (any case) confirm; an empty answer or EOF declines.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprint(out, warningStyle.Render(question)+" [y/N]: ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if errors.Is(err, io.EOF) {
		// Keep the terminal tidy when input ends without a newline.
		fmt.Fprintln(out)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
