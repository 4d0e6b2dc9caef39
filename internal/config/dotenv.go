package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/frcopy/frcopy/internal/errors"
	"github.com/joho/godotenv"
)

// DotEnvFile is the name of the project's environment file.
const DotEnvFile = ".env"

// ReadDotEnv returns the variables in dir/.env. A missing file yields an empty map.
func ReadDotEnv(dir string) (map[string]string, error) {
	path := filepath.Join(dir, DotEnvFile)

	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read "+path,
			"Check the file uses KEY=value lines")
	}
	return vars, nil
}

// SetDotEnvVar sets name=value in dir/.env. Only the line assigning name is
// replaced, or a new line appended; every other line is kept byte for byte.
func SetDotEnvVar(dir, name, value string) error {
	path := filepath.Join(dir, DotEnvFile)

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read "+path,
			"Check file permissions")
	}

	if _, err := godotenv.Unmarshal(string(content)); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read "+path,
			"Check the file uses KEY=value lines")
	}

	line, err := godotenv.Marshal(map[string]string{name: value})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to format "+name,
			"")
	}

	assign := regexp.MustCompile(`^\s*(export\s+)?` + regexp.QuoteMeta(name) + `\s*=`)
	lines := strings.Split(string(content), "\n")
	replaced := false
	for i, l := range lines {
		if assign.MatchString(l) {
			lines[i] = line
			replaced = true
		}
	}

	out := strings.Join(lines, "\n")
	if !replaced {
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += line + "\n"
	}

	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}
	return nil
}

// ExportEnv sets name=value in the project's .env file and in the process
// environment, so commands spawned afterwards see the same value.
func ExportEnv(dir, name, value string) error {
	if err := SetDotEnvVar(dir, name, value); err != nil {
		return err
	}
	if err := os.Setenv(name, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to set "+name,
			"")
	}
	return nil
}

// LookupEnv returns a variable from the .env map, falling back to the process environment.
func LookupEnv(vars map[string]string, name string) string {
	if v, ok := vars[name]; ok && v != "" {
		return v
	}
	return os.Getenv(name)
}
