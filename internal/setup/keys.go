package setup

import (
	"os"
	"path/filepath"
)

// PublicKeyPath returns the first public key found in the standard locations,
// preferring ed25519 over ecdsa over rsa. Empty when there is none.
func PublicKeyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	for _, name := range []string{"id_ed25519", "id_ecdsa", "id_rsa"} {
		path := filepath.Join(home, ".ssh", name+".pub")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sshKeyHint tells the operator which key the App needs to accept.
func sshKeyHint() string {
	if path := PublicKeyPath(); path != "" {
		return "Add the contents of " + path + " to the SSH keys of your App in the dashboard."
	}
	return "Create a key with 'ssh-keygen -t ed25519' and add the .pub file to the SSH keys of your App in the dashboard."
}
