package system

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// find in root
func findFileInProjectRoot(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, filename)); err == nil {
			return dir, nil
		}
		parentDir := filepath.Dir(dir)
		if parentDir == dir { // Reached the root of the filesystem
			break
		}
		dir = parentDir
	}
	return "", os.ErrNotExist
}

// LocateEnv returns the path of filename, looking in the current directory
// first and then walking up towards the filesystem root.
func LocateEnv(filename string) (string, error) {
	if _, err := os.Stat(filename); err == nil {
		return filename, nil
	}
	if filepath.IsAbs(filename) {
		return "", os.ErrNotExist
	}
	rootDir, err := findFileInProjectRoot(filename)
	if err != nil {
		return "", err
	}
	return filepath.Join(rootDir, filename), nil
}

// LoadEnv loads environment variables from a .env file. If the file is not
// found in the current directory, it searches for it in the project root.
// Variables already present in the environment are not overwritten.
func LoadEnv(filename string) error {
	path, err := LocateEnv(filename)
	if err != nil {
		return err
	}
	return godotenv.Load(path)
}
