package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// resolveInput возвращает JSON команды: аргумент - путь к существующему файлу
// или сам JSON; без аргумента данные читаются из stdin
func resolveInput(args []string, stdin io.Reader) ([]byte, error) {
	var data []byte
	switch {
	case len(args) == 0:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		data = b
	case isFile(args[0]):
		b, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		data = b
	default:
		data = []byte(args[0])
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	return data, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
