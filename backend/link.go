package backend

import (
	"fmt"
	"os"
	"os/exec"
)

// Link writes the object to a temporary file next to the output, links
// it into an executable with the given C compiler, and removes the
// temporary. No object file is left behind on any path.
func Link(object []byte, output, cc string) error {
	objPath := output + ".o"
	if err := os.WriteFile(objPath, object, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", objPath, err)
	}
	defer os.Remove(objPath)

	cmd := exec.Command(cc, objPath, "-o", output)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("linking with %s: %w", cc, err)
	}
	return nil
}
