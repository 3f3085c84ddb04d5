// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tspath/tspath/internal/meta"
)

const bashCompletionScript = `# bash completion for tspath
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tspath()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "aq cq rq completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"

    # Determine if an optional RootDir (first non-flag after subcommand) has
		# already been provided
    local have_rootdir=0
    local idx=2
    while [[ $idx -lt ${#COMP_WORDS[@]} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* ]]; then
            have_rootdir=1
            break
        fi
        ((idx++))
    done

    case "$cmd" in
    aq)
      local opts="$common --schema --diff --emit-paths --recursive -r --strategy --config-name"
            ;;
        cq)
      local opts="$common --schema --diff --recursive -r --config-name"
            ;;
        rq)
      local opts="$common --schema --recursive -r --strategy --config-name"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--strategy" ]]; then
        COMPREPLY=( $(compgen -W "probe first" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', or we've already consumed RootDir, offer flags
  if [[ "$cur" == -* || $have_rootdir -eq 1 ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise, we're on the (optional) RootDir positional — complete directories
  COMPREPLY=( $(compgen -o dirnames -- "$cur") )
  return 0
}

complete -F _tspath tspath
`

const zshCompletionScript = `#compdef tspath

_tspath() {
  local -a cmds
  cmds=(
    'aq:alias query'
    'cq:config query'
    'rq:resolve query'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tspath commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    aq)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '--diff[diff the probe and first rule sets]' \
        '--emit-paths[persist compiled rules]' \
        '(-r --recursive)'{-r,--recursive}'[recursive discovery]' \
        '--strategy[target selection strategy]:strategy:(probe first)' \
        '--config-name[config file name]:name' \
        '::RootDir:_directories'
      ;;
    cq)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '--diff[diff two discovered configs]' \
        '(-r --recursive)'{-r,--recursive}'[recursive discovery]' \
        '--config-name[config file name]:name' \
        '::RootDir:_directories'
      ;;
    rq)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '(-r --recursive)'{-r,--recursive}'[recursive discovery]' \
        '--strategy[target selection strategy]:strategy:(probe first)' \
        '--config-name[config file name]:name' \
        '::RootDir:_directories' \
        '*::specifier:'
      ;;
    completion)
      _arguments '1:shell:(bash zsh)'
      ;;
  esac
}

_tspath "$@"
`

// completionCommandAction emits the completion script for the requested
// shell.
func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := strings.ToLower(cmd.Args().First())
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		return fmt.Errorf("unsupported shell %q, must be one of [bash zsh]", shell)
	}
	return nil
}

// completionCommandBuilder constructs the cli.Command for "completion".
func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tspath completion bash|zsh",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
