package generators

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
)

// Default lengths used when the caller does not pick one.
const (
	DefaultPasswordLength   = 20
	DefaultTokenLength      = 32
	DefaultKeyLength        = 16
	DefaultPassphraseLength = 4
)

// MinPasswordLength is the shortest password Password will generate.
const MinPasswordLength = 4

// MaxLength caps every generator.
const MaxLength = 4096

// minWords is the smallest wordlist accepted for passphrases.
const minWords = 2

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	alphanumeric = lower + upper + digits
	passwordSet  = alphanumeric + symbols
)

//go:embed wordlist.txt
var embeddedWordlist string

// Password returns n characters drawn from letters, digits and ASCII symbols.
// It always contains a lowercase and an uppercase letter, and at least a fifth
// of it is digits.
func Password(n int) (string, error) {
	if n < MinPasswordLength || n > MaxLength {
		return "", fmt.Errorf("%w: password length must be between %d and %d", kerrors.ErrInvalidLength, MinPasswordLength, MaxLength)
	}

	// ceil(n/5) digits
	nDigits := (n + 4) / 5
	out := make([]byte, 0, n)

	for _, set := range []string{lower, upper} {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for i := 0; i < nDigits; i++ {
		c, err := pick(digits)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < n {
		c, err := pick(passwordSet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// Token returns n random bytes hex encoded, 2n characters long.
func Token(n int) (string, error) {
	if n < 1 || n > MaxLength {
		return "", fmt.Errorf("%w: token length must be between 1 and %d", kerrors.ErrInvalidLength, MaxLength)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Key returns n alphanumeric characters.
func Key(n int) (string, error) {
	if n < 1 || n > MaxLength {
		return "", fmt.Errorf("%w: key length must be between 1 and %d", kerrors.ErrInvalidLength, MaxLength)
	}
	out := make([]byte, n)
	for i := range out {
		c, err := pick(alphanumeric)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}

// Passphrase returns n words from words joined by single spaces. A nil list
// selects the built-in wordlist.
func Passphrase(n int, words []string) (string, error) {
	if n < 1 || n > MaxLength {
		return "", fmt.Errorf("%w: passphrase length must be between 1 and %d words", kerrors.ErrInvalidLength, MaxLength)
	}
	if words == nil {
		words = DefaultWordlist()
	}
	if len(words) < minWords {
		return "", fmt.Errorf("%w: need at least %d words", kerrors.ErrInvalidWordlist, minWords)
	}

	chosen := make([]string, n)
	for i := range chosen {
		j, err := randIndex(len(words))
		if err != nil {
			return "", err
		}
		chosen[i] = words[j]
	}
	return strings.Join(chosen, " "), nil
}

// DefaultWordlist returns the built-in wordlist.
func DefaultWordlist() []string {
	return parseWordlist(embeddedWordlist)
}

// LoadWordlist reads a newline separated wordlist. Blank lines are ignored
// and duplicate words are dropped.
func LoadWordlist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidWordlist, path, err)
	}
	words := parseWordlist(string(data))
	if len(words) < minWords {
		return nil, fmt.Errorf("%w: %s has fewer than %d distinct words", kerrors.ErrInvalidWordlist, path, minWords)
	}
	return words, nil
}

func parseWordlist(s string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func pick(set string) (byte, error) {
	i, err := randIndex(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return int(v.Int64()), nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
