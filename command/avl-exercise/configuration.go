// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/workload"
)

// basic defaults (directories are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-exercise.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultKeyType    = workload.IntegerKeys
	defaultSeed       = 1
	defaultInserts    = 1000
	defaultDeletes    = 500
	defaultKeyRange   = 10000
	defaultCheckEvery = 1
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// WorkloadType - what to apply to the tree
type WorkloadType struct {
	KeyType    string   `gluamapper:"key_type" yaml:"key_type"`
	Seed       int64    `gluamapper:"seed" yaml:"seed"`
	Inserts    int      `gluamapper:"inserts" yaml:"inserts"`
	Deletes    int      `gluamapper:"deletes" yaml:"deletes"`
	KeyRange   int      `gluamapper:"key_range" yaml:"key_range"`
	CheckEvery int      `gluamapper:"check_every" yaml:"check_every"`
	Operations []string `gluamapper:"operations" yaml:"operations"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" yaml:"data_directory"`
	PrintTree     bool                 `gluamapper:"print_tree" yaml:"print_tree"`
	Workload      WorkloadType         `gluamapper:"workload" yaml:"workload"`
	Logging       logger.Configuration `gluamapper:"logging" yaml:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PrintTree:     false,

		Workload: WorkloadType{
			KeyType:    string(defaultKeyType),
			Seed:       defaultSeed,
			Inserts:    defaultInserts,
			Deletes:    defaultDeletes,
			KeyRange:   defaultKeyRange,
			CheckEvery: defaultCheckEvery,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if !workload.KeyType(options.Workload.KeyType).Valid() {
		return nil, fmt.Errorf("key type: %q is not supported", options.Workload.KeyType)
	}
	if options.Workload.Inserts < 0 || options.Workload.Deletes < 0 {
		return nil, fmt.Errorf("inserts: %d and deletes: %d cannot be negative", options.Workload.Inserts, options.Workload.Deletes)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force the log directory to be an absolute path
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// the script operations followed by any random ones
func (w WorkloadType) operations() ([]workload.Operation, error) {
	keyType := workload.KeyType(w.KeyType)

	operations, err := workload.ParseOperations(keyType, w.Operations)
	if nil != err {
		return nil, err
	}

	if 0 == w.Inserts && 0 == w.Deletes {
		return operations, nil
	}

	random, err := workload.Random(keyType, w.Seed, w.Inserts, w.Deletes, w.KeyRange)
	if nil != err {
		return nil, err
	}
	return append(operations, random...), nil
}
