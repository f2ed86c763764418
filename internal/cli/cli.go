// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jeranaias/llmchat/internal/cloud"
	"github.com/jeranaias/llmchat/internal/config"
	"github.com/jeranaias/llmchat/internal/model"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configFile string
	verbose    bool
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		DisplayError(os.Stderr, err)
	}
	return GetExitCode(err)
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newRootCommand(defaultChatEnv(stdout, stderr))
}

func newRootCommand(env chatEnv) *cobra.Command {
	cloud.UserAgent = "llmchat/" + Version
	root := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "llmchat",
		Short: "Chat with an LLM from your terminal",
		Long: `llmchat sends your messages to an OpenRouter-hosted model and renders the
replies as markdown. Set LLM_API_KEY before starting a chat.`,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		// Without a subcommand there is nothing to do.
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(env.stdout)
	rootCmd.SetErr(env.stderr)
	rootCmd.SetVersionTemplate(fmt.Sprintf("llmchat version %s (commit %s)\n", Version, GitCommit))
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.PersistentFlags().StringVar(&root.configFile, "config", "", "config file (default ~/.llmchat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&root.verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(newChatCommand(env, root))
	return rootCmd
}

// newChatCommand builds "llmchat chat".
func newChatCommand(env chatEnv, root *rootOptions) *cobra.Command {
	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Example: `  llmchat chat
  llmchat chat -m mistral-7b -t 0.2
  llmchat chat --model openai/gpt-4o-mini --max-tokens 1200`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), env, root, overridesFromFlags(cmd.Flags()))
		},
	}

	f := chatCmd.Flags()
	f.StringP("model", "m", model.DefaultModel,
		"model identifier or alias ("+strings.Join(model.ModelAliases(), ", ")+")")
	f.Float64P("temperature", "t", config.DefaultTemperature, "sampling temperature")
	f.IntP("max-tokens", "x", config.DefaultMaxTokens, "maximum tokens in a reply")
	f.Float64P("top-p", "p", config.DefaultTopP, "nucleus sampling threshold")
	f.IntP("n", "n", config.DefaultN, "number of choices to request")
	return chatCmd
}

// overridesFromFlags returns the flags the user actually set. Defaults are
// left to the config file and built-in values.
func overridesFromFlags(flags *pflag.FlagSet) config.Overrides {
	var o config.Overrides
	if flags.Changed("model") {
		v, _ := flags.GetString("model")
		o.Model = &v
	}
	if flags.Changed("temperature") {
		v, _ := flags.GetFloat64("temperature")
		o.Temperature = &v
	}
	if flags.Changed("max-tokens") {
		v, _ := flags.GetInt("max-tokens")
		o.MaxTokens = &v
	}
	if flags.Changed("top-p") {
		v, _ := flags.GetFloat64("top-p")
		o.TopP = &v
	}
	if flags.Changed("n") {
		v, _ := flags.GetInt("n")
		o.N = &v
	}
	return o
}
