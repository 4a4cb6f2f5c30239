package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

const emailPrompt = "Enter email of the user to make superadmin: "

// promptEmail asks for the email once. A terminal gets a huh input; anything
// else (pipes, redirected files) is read as a single line.
func promptEmail(in io.Reader, out io.Writer) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return promptEmailForm()
	}
	return readLine(in, out, emailPrompt)
}

func promptEmailForm() (string, error) {
	var email string

	// No Validate: an empty answer must end the run, not re-prompt
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(strings.TrimSpace(emailPrompt)).
				Placeholder("user@example.com").
				Value(&email),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("email prompt cancelled: %w", err)
	}

	return email, nil
}

// readLine writes the prompt and blocks for one line. A missing trailing
// newline at EOF is fine.
func readLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read email: %w", err)
	}

	// Keep the answer on its own line when input was piped
	fmt.Fprintln(out)

	return line, nil
}
