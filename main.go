// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tspath/tspath/internal/command"
	"github.com/tspath/tspath/internal/config"
	"github.com/tspath/tspath/internal/log"
	"github.com/tspath/tspath/internal/util"
	"github.com/tspath/tspath/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		// Expand @set first, then collapse any duplicate flags the expansion
		// may have introduced so the command line wins over the set.
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		args = deduplicateFlags(args)
		args = processRootDirArg(args)
		return args
	}
}

// processRootDirArg makes sure the argument immediately following the command
// is a RootDir. If the caller didn't supply one, the CWD is inserted so every
// command can rely on args[2] being the root.
func processRootDirArg(args []string) []string {
	rootDir, _ := os.Getwd()
	if len(args) > 2 {
		if _, _, err := util.ParseRootDir(args[2]); err == nil {
			rootDir = args[2]
		}
	}
	if len(args) == 2 {
		args = append(args, rootDir)
	} else if args[2] != rootDir {
		args = append(args[:2], append([]string{rootDir}, args[2:]...)...)
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}

// deduplicateFlags removes earlier occurrences of a repeated flag so the last
// one wins. Positional arguments are never touched. A flag token followed by a
// non-flag token is treated as a flag/value pair; a flag using = syntax
// carries its value inline.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		key   string // empty for positional args
		parts []string
	}

	rest := args[2:]
	var tokens []token
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if !strings.HasPrefix(a, "-") {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}
		key := a
		parts := []string{a}
		if eq := strings.Index(a, "="); eq != -1 {
			key = a[:eq]
		} else if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			parts = append(parts, rest[i+1])
			i++
		}
		tokens = append(tokens, token{key: key, parts: parts})
	}

	last := map[string]int{}
	for i, t := range tokens {
		if t.key != "" {
			last[t.key] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, t := range tokens {
		if t.key != "" && last[t.key] != i {
			continue
		}
		result = append(result, t.parts...)
	}
	return result
}
