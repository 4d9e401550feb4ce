// Copyright © 2018 One Concern

package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// GCSScheme prefixes locations hosted on Google Cloud Storage
const GCSScheme = "gs://"

// Store implementations know how to write objects to some storage backend.
type Store interface {
	String() string
	Put(context.Context, string, io.Reader, bool) error
}

// Put modes
const (
	// OverWrite replaces any existing object
	OverWrite = false

	// NoOverWrite fails with status.ErrExists if the object exists already
	NoOverWrite = true
)

// Location of an object
type Location struct {
	// Bucket is empty for local locations
	Bucket string
	Key    string
}

// IsGCS tells if this location lives on Google Cloud Storage
func (l Location) IsGCS() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.IsGCS() {
		return GCSScheme + l.Bucket + "/" + l.Key
	}
	return l.Key
}

// ParseLocation parses either a gs://bucket/key URL or a local file path
func ParseLocation(target string) (Location, error) {
	if target == "" {
		return Location{}, fmt.Errorf("empty location")
	}
	if !strings.HasPrefix(target, GCSScheme) {
		return Location{Key: target}, nil
	}
	parts := strings.SplitN(strings.TrimPrefix(target, GCSScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || strings.Trim(parts[1], "/") == "" {
		return Location{}, fmt.Errorf("invalid location %q: expected %sbucket/object", target, GCSScheme)
	}
	return Location{Bucket: parts[0], Key: parts[1]}, nil
}
