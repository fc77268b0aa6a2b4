package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ConfirmSingleKey displays a yes/no prompt and waits for a single keypress.
// Returns true for 'y'/'Y', false for 'n'/'N', or error on Ctrl+C.
// No Enter key is required - responds immediately to keypress.
func ConfirmSingleKey(prompt string) (bool, error) {
	fd := int(os.Stdin.Fd())

	for {
		fmt.Printf("%s (y/n): ", prompt)

		// Raw mode so a single byte arrives without waiting for Enter
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return false, fmt.Errorf("failed to set raw mode: %w", err)
		}

		b := make([]byte, 1)
		_, err = os.Stdin.Read(b)
		term.Restore(fd, oldState)
		if err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}

		switch b[0] {
		case 3: // Ctrl+C
			fmt.Println("\n^C")
			return false, fmt.Errorf("interrupted")
		case 'y', 'Y':
			fmt.Println("y")
			return true, nil
		case 'n', 'N':
			fmt.Println("n")
			return false, nil
		}

		fmt.Println()
		fmt.Println("Invalid key. Please press 'y' or 'n'.")
	}
}
