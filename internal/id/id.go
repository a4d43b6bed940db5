// Package id generates prefixed NanoIDs for images and custom styles.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Length of the random part.
const Length = 12

// Generate returns prefix + "-" + a URL-safe NanoID.
func Generate(prefix string) (string, error) {
	n, err := gonanoid.New(Length)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return prefix + "-" + n, nil
}
