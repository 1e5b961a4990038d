// Package verify checks passwords in a generated artifact: it locates a
// user's auth digest by scanning the insertion statements and verifies that a
// plaintext equal to the user's nickname matches the stored digest.
package verify

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrArtifactMissing reports that the SQL artifact does not exist.
	ErrArtifactMissing = errors.New("artifact not found")
	// ErrUserNotFound reports that no p_user row carries the nickname.
	ErrUserNotFound = errors.New("user not found in artifact")
	// ErrDigestNotFound reports that a located user has no auth row.
	ErrDigestNotFound = errors.New("password digest not found for user")
	// ErrHashUnavailable reports a placeholder digest emitted by a run
	// without hashing capability; it can never verify.
	ErrHashUnavailable = errors.New("digest is a placeholder, hashing was unavailable at generation time")
)

var userIDPattern = regexp.MustCompile(`^\((\d+),`)

// FindDigest scans the artifact for the user with the given nickname and
// returns the user id and stored password digest.
func FindDigest(path, nickname string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return "", "", err
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return "", "", err
	}

	userID := findUserID(lines, nickname)
	if userID == "" {
		return "", "", fmt.Errorf("%w: %q", ErrUserNotFound, nickname)
	}

	digest := findAuthDigest(lines, userID)
	if digest == "" {
		return "", "", fmt.Errorf("%w: user_id=%s", ErrDigestNotFound, userID)
	}
	return userID, digest, nil
}

// Check verifies the digest against the plaintext. A placeholder digest is a
// distinct, non-silent failure.
func Check(digest, plaintext string) error {
	if strings.Contains(digest, "_placeholder") {
		return ErrHashUnavailable
	}
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)); err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	return nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// findUserID locates the values line following a p_user insertion header that
// carries the quoted nickname, and reads the leading numeric id off it.
func findUserID(lines []string, nickname string) string {
	needle := "'" + strings.ReplaceAll(nickname, "'", "''") + "'"
	for i := 1; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i-1], "INSERT INTO p_user ") {
			continue
		}
		if !strings.Contains(lines[i], needle) {
			continue
		}
		if m := userIDPattern.FindStringSubmatch(lines[i]); m != nil {
			return m[1]
		}
	}
	return ""
}

// findAuthDigest locates the p_user_auth row for the user id and extracts the
// stored digest.
func findAuthDigest(lines []string, userID string) string {
	pattern := regexp.MustCompile(`^\('[^']+', ` + regexp.QuoteMeta(userID) + `, '([^']+)'`)
	for i := 0; i < len(lines)-1; i++ {
		if !strings.HasPrefix(lines[i], "INSERT INTO p_user_auth ") {
			continue
		}
		if m := pattern.FindStringSubmatch(lines[i+1]); m != nil {
			return m[1]
		}
	}
	return ""
}
