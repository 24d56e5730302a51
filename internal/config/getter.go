// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // scheme, host and path
)

// fetch downloads source into a temporary directory and returns the file
// content. A source with a "//" subdirectory, such as a git repository, is
// fetched as a directory and the named file is read from it.
func fetch(ctx context.Context, source string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "recipectl-getter-*")
	if err != nil {
		return nil, errors.Join(ErrReadConfigFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrReadConfigFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     source,
		Dst:     filepath.Join(tmpDir, "config"),
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	var fileName string

	if dirURL, name := splitFileNameFromGetterURL(source); dirURL != "" && name != "" {
		req.Src = dirURL
		req.Dst = filepath.Join(tmpDir, "g")
		req.GetMode = getter.ModeDir
		fileName = name
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrReadConfigFile, err)
	}

	target := res.Dst
	if fileName != "" {
		target = filepath.Join(res.Dst, fileName)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return nil, errors.Join(ErrReadConfigFile, err)
	}

	return content, nil
}

// splitFileNameFromGetterURL splits a getter URL with a subdirectory into the
// directory URL and the file name, carrying over any query. It returns empty
// strings when source has no subdirectory part or it does not name a file.
func splitFileNameFromGetterURL(source string) (string, string) {
	var ref string

	parts := strings.Split(source, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if before, after, ok := strings.Cut(last, goGetterRefSeparator); ok {
		last, ref = before, after
	}

	if last == "" || filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}
