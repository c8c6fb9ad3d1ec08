package configs

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorilla/securecookie"
)

const adminTokenFile = ".env.new_keys"

// GenerateAdminToken returns a random URL-safe token suitable for ADMIN_API_TOKEN.
func GenerateAdminToken() (string, error) {
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return "", fmt.Errorf("could not generate admin token")
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}

func GenerateAndPrintAdminToken() error {
	fmt.Println("Generating new admin API token...")

	token, err := GenerateAdminToken()
	if err != nil {
		return err
	}

	fmt.Println("\n================================================")
	fmt.Printf("ADMIN_API_TOKEN=%s\n", token)
	fmt.Println("================================================")

	fullPath, err := filepath.Abs(adminTokenFile)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", adminTokenFile, err)
	}

	file, err := os.Create(adminTokenFile)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", adminTokenFile, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "ADMIN_API_TOKEN=%s\n", token); err != nil {
		return fmt.Errorf("failed to write token to file %s: %w", adminTokenFile, err)
	}

	fmt.Printf("\nToken written to '%s'. Copy it into your .env file.\n", fullPath)
	fmt.Println("Regenerating the token invalidates every admin client using the old one.")

	return nil
}
