// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentUploads = 5

type uploader interface {
	Upload(bucket, key string, data io.Reader) (string, error)
}

// Object describes one file uploaded by a sync.
type Object struct {
	Key  string
	Size int64
}

// Syncer uploads a staged distribution directory to an S3 bucket.
type Syncer struct {
	fs afero.Fs
	s3 uploader
}

// NewSyncer returns a Syncer that reads from fs and uploads through s3.
func NewSyncer(fs afero.Fs, s3 uploader) *Syncer {
	return &Syncer{
		fs: fs,
		s3: s3,
	}
}

// Sync uploads every file under dir to the bucket, keyed by the file's path
// relative to dir under the given key prefix. Uploads run in parallel and the
// first failure aborts the sync. The uploaded objects are returned sorted by key.
func (s *Syncer) Sync(dir, bucket, prefix string) ([]Object, error) {
	type stagedFile struct {
		path string
		key  string
		size int64
	}
	var files []stagedFile
	err := afero.Walk(s.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, stagedFile{
			path: p,
			key:  path.Join(prefix, filepath.ToSlash(rel)),
			size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk staged dir %s: %w", dir, err)
	}

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentUploads)
	var mu sync.Mutex
	var uploaded []Object
	for i := range files {
		f := files[i]
		g.Go(func() error {
			body, err := s.fs.Open(f.path)
			if err != nil {
				return fmt.Errorf("open %s: %w", f.path, err)
			}
			defer body.Close()
			if _, err := s.s3.Upload(bucket, f.key, body); err != nil {
				return err
			}
			mu.Lock()
			uploaded = append(uploaded, Object{Key: f.key, Size: f.size})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(uploaded, func(i, j int) bool { return uploaded[i].Key < uploaded[j].Key })
	return uploaded, nil
}
