package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	cryptossh "golang.org/x/crypto/ssh"
)

// sshUser is the user component of forge SSH URLs.
const sshUser = "git"

var errNoSSHKey = errors.New("no usable SSH key found in ~/.ssh")

// SSHAuth builds an authentication method for SSH remotes. It tries the
// default private keys in ~/.ssh and falls back to the SSH agent. Used when
// the configured repository sets use-ssh.
func SSHAuth() (gitssh.AuthMethod, error) {
	home, err := os.UserHomeDir()
	if err == nil {
		for _, name := range []string{"id_ed25519", "id_rsa"} {
			keyPath := filepath.Join(home, ".ssh", name)
			// #nosec G304 - well-known key locations in the user's home
			pem, err := os.ReadFile(keyPath)
			if err != nil {
				continue
			}
			signer, err := cryptossh.ParsePrivateKey(pem)
			if err != nil {
				// Likely passphrase-protected; the agent can still serve it.
				continue
			}
			return &gitssh.PublicKeys{User: sshUser, Signer: signer}, nil
		}
	}

	auth, err := gitssh.NewSSHAgentAuth(sshUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNoSSHKey, err)
	}
	return auth, nil
}
