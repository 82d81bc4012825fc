package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// Variables already set in the process environment win over the file.
// The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

// parseLine splits KEY=VALUE, trimming spaces and one pair of surrounding quotes.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// Float32 returns the variable key parsed as a float. ok is false when the variable is unset;
// a set but malformed value is an error.
func Float32(key string) (v float32, ok bool, err error) {
	s, set := os.LookupEnv(key)
	if !set || s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false, fmt.Errorf("env %s: %w", key, err)
	}
	return float32(f), true, nil
}

// Int32 returns the variable key parsed as an integer, like Float32.
func Int32(key string) (v int32, ok bool, err error) {
	s, set := os.LookupEnv(key)
	if !set || s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("env %s: %w", key, err)
	}
	return int32(n), true, nil
}
