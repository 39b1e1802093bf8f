package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

var (
	ErrNotFound       = errors.New("dataset not found")
	ErrInvalidProject = errors.New("invalid project")
)

type DiskStorage struct {
	RootFolder string
}

func NewDiskStorage(rootFolder string) *DiskStorage {
	return &DiskStorage{
		RootFolder: rootFolder,
	}
}

func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := filepath.Join(ds.RootFolder, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}
