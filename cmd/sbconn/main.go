// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// sbconn inspects, builds, and validates Service Bus connection strings.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	servicebus "github.com/Azure/servicebus-connections-go"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	verbose bool
	format  string
	showKey bool

	buildEndpoint   string
	buildKeyName    string
	buildKey        string
	buildEntityPath string
	buildTransport  string
)

// connectionInfo is the output shape for the parse command.
type connectionInfo struct {
	Endpoint            string            `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	SharedAccessKeyName string            `json:"sharedAccessKeyName,omitempty" yaml:"sharedAccessKeyName,omitempty"`
	SharedAccessKey     string            `json:"sharedAccessKey,omitempty" yaml:"sharedAccessKey,omitempty"`
	EntityPath          string            `json:"entityPath,omitempty" yaml:"entityPath,omitempty"`
	TransportType       string            `json:"transportType" yaml:"transportType"`
	Properties          map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "sbconn",
		Short:        "Inspect and build Service Bus connection strings",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(
				os.Stderr,
				&slog.HandlerOptions{Level: level},
			)))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging")

	parseCmd := &cobra.Command{
		Use:   "parse <connection-string>",
		Short: "Parse a connection string and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVar(
		&format, "format", "text", "output format: text, json, or yaml")
	parseCmd.Flags().BoolVar(
		&showKey, "show-key", false, "print the shared access key in full")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a canonical connection string from flags",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVar(
		&buildEndpoint, "endpoint", "", "namespace endpoint (host or URI)")
	buildCmd.Flags().StringVar(
		&buildKeyName, "key-name", "", "shared access key name")
	buildCmd.Flags().StringVar(
		&buildKey, "key", "", "shared access key")
	buildCmd.Flags().StringVar(
		&buildEntityPath, "entity-path", "", "queue or topic path")
	buildCmd.Flags().StringVar(
		&buildTransport, "transport", "",
		"transport type: Amqp or AmqpWebSockets")

	checkCmd := &cobra.Command{
		Use:   "check <connection-string>",
		Short: "Validate a connection string and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	rootCmd.AddCommand(parseCmd, buildCmd, checkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	cs, err := servicebus.ParseConnectionString(args[0])
	if err != nil {
		return errors.Wrap(err, "parsing connection string")
	}
	slog.Debug("parsed connection string",
		"endpoint", cs.Endpoint(),
		"properties", cs.Properties().Len())

	info := connectionInfo{
		Endpoint:            cs.Endpoint(),
		SharedAccessKeyName: cs.SharedAccessKeyName(),
		SharedAccessKey:     cs.SharedAccessKey(),
		EntityPath:          cs.EntityPath(),
		TransportType:       cs.TransportType().String(),
	}
	if !showKey && info.SharedAccessKey != "" {
		info.SharedAccessKey = "<redacted>"
	}
	if cs.Properties().Len() > 0 {
		info.Properties = make(map[string]string, cs.Properties().Len())
		cs.Properties().Range(func(key, value string) bool {
			info.Properties[key] = value
			return true
		})
	}

	switch format {
	case "text":
		printText(cmd, cs, info)
		return nil
	case "json":
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding output")
		}
		cmd.Println(string(out))
		return nil
	case "yaml":
		out, err := yaml.Marshal(info)
		if err != nil {
			return errors.Wrap(err, "encoding output")
		}
		cmd.Print(string(out))
		return nil
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

func printText(cmd *cobra.Command, cs *servicebus.ConnectionString, info connectionInfo) {
	printField := func(name, value string) {
		if value != "" {
			cmd.Printf("%-21s %s\n", name+":", value)
		}
	}
	printField("Endpoint", info.Endpoint)
	printField("SharedAccessKeyName", info.SharedAccessKeyName)
	if info.SharedAccessKey == "<redacted>" {
		cmd.Printf("%-21s %s\n", "SharedAccessKey:",
			color.YellowString("<redacted>"))
	} else {
		printField("SharedAccessKey", info.SharedAccessKey)
	}
	printField("EntityPath", info.EntityPath)
	printField("TransportType", info.TransportType)
	cs.Properties().Range(func(key, value string) bool {
		cmd.Printf("%-21s %s\n", key+":", value)
		return true
	})
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cs := &servicebus.ConnectionString{}
	if buildEndpoint != "" {
		if err := cs.SetEndpoint(buildEndpoint); err != nil {
			return errors.Wrap(err, "setting endpoint")
		}
	}
	cs.SetSharedAccessKeyName(buildKeyName)
	cs.SetSharedAccessKey(buildKey)
	cs.SetEntityPath(buildEntityPath)
	if buildTransport != "" {
		t, err := servicebus.ParseTransportType(buildTransport)
		if err != nil {
			return errors.Wrap(err, "setting transport type")
		}
		cs.SetTransportType(t)
	}

	cmd.Println(cs.String())
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cs, err := servicebus.ParseConnectionString(args[0])
	if err != nil {
		return errors.Wrap(err, "invalid connection string")
	}
	if dropped := cs.Properties().Len(); dropped > 0 {
		slog.Debug("extension properties are not re-emitted",
			"count", dropped)
	}
	cmd.Println(cs.String())
	return nil
}
