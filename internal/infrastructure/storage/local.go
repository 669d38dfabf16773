// Package storage guarda archivos subidos en un directorio local, uno por dueño.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
)

var _ usecase.PhotoStorage = (*LocalStorage)(nil)

// PublicPrefix ruta bajo la que la API sirve el directorio de subidas.
const PublicPrefix = "/uploads"

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// LocalStorage implementa usecase.PhotoStorage sobre el sistema de archivos.
type LocalStorage struct {
	dir      string
	maxBytes int64
}

// NewLocalStorage crea el directorio si no existe. maxMB <= 0 usa 5 MB.
func NewLocalStorage(dir string, maxMB int) (*LocalStorage, error) {
	if maxMB <= 0 {
		maxMB = 5
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, maxBytes: int64(maxMB) << 20}, nil
}

// Dir directorio raíz (para servirlo como estático).
func (s *LocalStorage) Dir() string { return s.dir }

// Save escribe el archivo como <key><ext> reemplazando cualquier versión anterior del mismo dueño.
// Devuelve la URL pública relativa.
func (s *LocalStorage) Save(ctx context.Context, key, filename string, r io.Reader) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: clave de archivo inválida", domain.ErrInvalidInput)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: formato de imagen no soportado %q", domain.ErrInvalidInput, ext)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("storage: temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(r, s.maxBytes+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("storage: escribir: %w", err)
	}
	if n > s.maxBytes {
		return "", fmt.Errorf("%w: el archivo supera %d MB", domain.ErrInvalidInput, s.maxBytes>>20)
	}

	for e := range allowedExt {
		if e != ext {
			if err := os.Remove(filepath.Join(s.dir, key+e)); err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("storage: limpiar versión previa: %w", err)
			}
		}
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key+ext)); err != nil {
		return "", fmt.Errorf("storage: mover: %w", err)
	}
	return PublicPrefix + "/" + key + ext, nil
}
